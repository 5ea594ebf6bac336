package climb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("climb: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("climb: invalid option supplied")

	// ErrBudgetExhausted is returned when a search expands more cells than
	// its step budget allows without settling the goal.
	ErrBudgetExhausted = errors.New("climb: step budget exhausted")
)

// Strategy selects how ShortestPathFromAny explores candidate starts.
type Strategy int

const (
	// StrategyPerStart runs one isolated forward search per candidate start.
	StrategyPerStart Strategy = iota
	// StrategyReverse runs a single backward search from the goal.
	StrategyReverse
)

// String returns the name used in configuration files and flags.
func (s Strategy) String() string {
	switch s {
	case StrategyPerStart:
		return "per-start"
	case StrategyReverse:
		return "reverse"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy resolves a strategy name as produced by Strategy.String.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "per-start":
		return StrategyPerStart, nil
	case "reverse":
		return StrategyReverse, nil
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
}

// Option configures search behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// StepBudget, if > 0, caps the number of frontier expansions per search.
	StepBudget int

	// MaxDepth, if > 0, stops recording distances beyond this depth.
	MaxDepth int

	// ReturnPath requests Result.Path.
	ReturnPath bool

	// OnEnqueue is called when a cell receives its distance and joins the frontier.
	OnEnqueue func(c heightmap.Coordinate, depth int)

	// OnDequeue is called when a cell leaves the frontier, before expansion.
	OnDequeue func(c heightmap.Coordinate, depth int)

	// OnVisit is called when expanding a cell. A returned error aborts the search.
	OnVisit func(c heightmap.Coordinate, depth int) error

	// Strategy chooses the ShortestPathFromAny algorithm.
	Strategy Strategy

	// Workers, if > 1, runs per-start searches concurrently.
	// Hooks must then be safe for concurrent use.
	Workers int

	// Logger receives debug records from the orchestrator.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no step budget, no depth limit, no path
//   - no-op hooks
//   - StrategyPerStart, sequential
//   - a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(heightmap.Coordinate, int) {},
		OnDequeue: func(heightmap.Coordinate, int) {},
		OnVisit:   func(heightmap.Coordinate, int) error { return nil },
		Strategy:  StrategyPerStart,
		Workers:   1,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStepBudget bounds the work of each search.
//
//	n > 0: at most n expansions
//	n == 0: explicit no budget
//	n < 0: invalid option → ErrOptionViolation
func WithStepBudget(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: StepBudget cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.StepBudget = n
	}
}

// WithMaxDepth stops recording distances beyond d.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithReturnPath asks the search to reconstruct the winning path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c heightmap.Coordinate, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c heightmap.Coordinate, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on expansion; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(c heightmap.Coordinate, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithStrategy selects the ShortestPathFromAny algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case StrategyPerStart, StrategyReverse:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %v", ErrOptionViolation, s)
		}
	}
}

// WithWorkers sets the concurrency of StrategyPerStart.
// 0 and 1 both mean sequential; negative values are rejected.
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = 1
		default:
			o.Workers = n
		}
	}
}

// WithLogger routes orchestrator debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a search.
//   - Steps: minimum number of moves; meaningful only when Reachable.
//   - Reachable: false when no climb-constrained route exists.
//   - Visited: cells that received a distance (summed over all searches run).
//   - Expanded: cells taken off the frontier (summed over all searches run).
//   - Start: the start cell of the winning route, when Reachable.
//   - Path: start → goal inclusive, only with WithReturnPath.
type Result struct {
	Steps     int
	Reachable bool
	Visited   int
	Expanded  int
	Start     heightmap.Coordinate
	Path      []heightmap.Coordinate
}

// Distance returns the step count and whether the goal was reached.
func (r Result) Distance() (int, bool) {
	return r.Steps, r.Reachable
}

// String renders the step count or "unreachable".
func (r Result) String() string {
	if !r.Reachable {
		return "unreachable"
	}
	return fmt.Sprintf("%d", r.Steps)
}

// buildOptions applies opts over the defaults and returns the first violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
