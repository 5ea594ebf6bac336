package climb

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hillclimb/elevation"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// walker encapsulates the mutable state of one search.
type walker struct {
	grid     *heightmap.Grid
	opts     Options
	ctx      context.Context
	cache    *visitCache
	queue    *frontier
	reverse  bool
	scratch  []heightmap.Coordinate
	expanded int
}

func newWalker(g *heightmap.Grid, o Options, reverse bool) *walker {
	return &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		cache:   newVisitCache(g),
		queue:   newFrontier(),
		reverse: reverse,
		scratch: make([]heightmap.Coordinate, 0, 4),
	}
}

// ShortestPath runs a breadth-first search from start and returns the
// minimum number of climb-constrained steps needed to reach goal.
// An unreachable goal yields Result.Reachable == false and a nil error.
// Returns ErrGridNil, a wrapped heightmap.ErrOutOfBounds, ErrOptionViolation,
// ErrBudgetExhausted, ctx.Err(), or a wrapped OnVisit error.
//
// Complexity: O(R×C) time and memory.
func ShortestPath(g *heightmap.Grid, start, goal heightmap.Coordinate, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err = checkBounds(g, start, goal); err != nil {
		return Result{}, err
	}

	return search(g, o, start, goal)
}

// search is ShortestPath without validation; the orchestrator calls it once
// per candidate start.
func search(g *heightmap.Grid, o Options, start, goal heightmap.Coordinate) (Result, error) {
	w := newWalker(g, o, false)
	hit, ok, err := w.run(start, func(c heightmap.Coordinate) bool { return c == goal })
	res := Result{Visited: w.cache.len(), Expanded: w.expanded}
	if err != nil || !ok {
		return res, err
	}

	res.Steps, _ = w.cache.distance(hit)
	res.Reachable = true
	res.Start = start
	if o.ReturnPath {
		res.Path = w.cache.path(hit)
	}
	return res, nil
}

// run seeds the frontier with root and expands cells in FIFO order until
// done reports true for a freshly recorded cell or the frontier empties.
// It returns the cell that satisfied done.
func (w *walker) run(root heightmap.Coordinate, done func(heightmap.Coordinate) bool) (heightmap.Coordinate, bool, error) {
	w.enqueue(root, 0, root)
	if done(root) {
		return root, true, nil
	}

	for w.queue.len() > 0 {
		select {
		case <-w.ctx.Done():
			return root, false, w.ctx.Err()
		default:
		}
		if w.opts.StepBudget > 0 && w.expanded >= w.opts.StepBudget {
			return root, false, fmt.Errorf("%w: %d expansions from %v", ErrBudgetExhausted, w.expanded, root)
		}

		cur, depth, err := w.dequeue()
		if err != nil {
			return root, false, err
		}
		if w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth {
			continue
		}

		from := w.grid.LevelAt(cur)
		w.scratch = w.grid.AppendNeighbors(w.scratch[:0], cur)
		for _, nbr := range w.scratch {
			if w.cache.has(nbr) || !w.legal(from, w.grid.LevelAt(nbr)) {
				continue
			}
			w.enqueue(nbr, depth+1, cur)
			if done(nbr) {
				return nbr, true, nil
			}
		}
	}

	return root, false, nil
}

// legal applies the climb constraint in the walker's direction. Walking
// backward from the goal, a move cur → nbr mirrors the forward step nbr → cur.
func (w *walker) legal(from, to elevation.Level) bool {
	if w.reverse {
		return to.CanStepTo(from)
	}
	return from.CanStepTo(to)
}

// enqueue records d for c, calls OnEnqueue, and appends c to the frontier.
func (w *walker) enqueue(c heightmap.Coordinate, d int, parent heightmap.Coordinate) {
	w.cache.record(c, d, parent)
	w.opts.OnEnqueue(c, d)
	w.queue.push(c)
}

// dequeue pops the oldest cell, invokes OnDequeue and OnVisit, and returns
// the cell with its recorded depth.
func (w *walker) dequeue() (heightmap.Coordinate, int, error) {
	c, _ := w.queue.pop()
	d, _ := w.cache.distance(c)
	w.expanded++
	w.opts.OnDequeue(c, d)
	if err := w.opts.OnVisit(c, d); err != nil {
		return c, d, fmt.Errorf("climb: OnVisit error at %v: %w", c, err)
	}
	return c, d, nil
}

// checkBounds rejects coordinates the grid did not produce.
func checkBounds(g *heightmap.Grid, cs ...heightmap.Coordinate) error {
	for _, c := range cs {
		if !g.InBounds(c) {
			return fmt.Errorf("%w: %v (grid %dx%d)", heightmap.ErrOutOfBounds, c, g.Rows(), g.Columns())
		}
	}
	return nil
}
