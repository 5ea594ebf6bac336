package climb

import (
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/elevation"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// ShortestPathFromAny returns the fewest steps needed to reach goal from any
// minimum-elevation cell (see heightmap.Grid.Lowest). Result.Start names the
// winning start. If no candidate reaches goal, or the grid has no
// minimum-elevation cell, Result.Reachable is false and the error is nil.
//
// With StrategyPerStart every candidate gets its own isolated search and ties
// go to the candidate that comes first in row-major order. With
// StrategyReverse a single backward search runs from goal; the step count is
// identical but on ties Start may name a different candidate.
func ShortestPathFromAny(g *heightmap.Grid, goal heightmap.Coordinate, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err = checkBounds(g, goal); err != nil {
		return Result{}, err
	}

	if o.Strategy == StrategyReverse {
		return fromAnyReverse(g, o, goal)
	}
	return fromAnyPerStart(g, o, goal)
}

// fromAnyPerStart reruns search once per candidate start, sequentially or on
// up to o.Workers goroutines, and reduces the results.
func fromAnyPerStart(g *heightmap.Grid, o Options, goal heightmap.Coordinate) (Result, error) {
	starts := slices.Collect(g.Lowest())
	results := make([]Result, len(starts))
	o.Logger.Debug("per-start search", "goal", goal, "candidates", len(starts), "workers", o.Workers)

	if o.Workers > 1 && len(starts) > 1 {
		grp, ctx := errgroup.WithContext(o.Ctx)
		grp.SetLimit(o.Workers)
		so := o
		so.Ctx = ctx
		for i, s := range starts {
			grp.Go(func() error {
				r, err := search(g, so, s, goal)
				if err != nil {
					return fmt.Errorf("climb: search from %v: %w", s, err)
				}
				results[i] = r
				return nil
			})
		}
		if err := grp.Wait(); err != nil {
			return Result{}, err
		}
	} else {
		for i, s := range starts {
			r, err := search(g, o, s, goal)
			if err != nil {
				return Result{}, fmt.Errorf("climb: search from %v: %w", s, err)
			}
			results[i] = r
		}
	}

	return reduce(o.Logger, starts, results), nil
}

// reduce picks the reachable result with the fewest steps, earliest start
// first, and sums the work counters of every search.
func reduce(log *slog.Logger, starts []heightmap.Coordinate, results []Result) Result {
	var best Result
	for i, r := range results {
		log.Debug("candidate finished", "start", starts[i], "result", r.String(), "visited", r.Visited)
		visited, expanded := best.Visited+r.Visited, best.Expanded+r.Expanded
		if r.Reachable && (!best.Reachable || r.Steps < best.Steps) {
			best = r
		}
		best.Visited, best.Expanded = visited, expanded
	}
	log.Debug("per-start search done", "result", best.String(), "start", best.Start)
	return best
}

// fromAnyReverse walks backward from goal with the climb constraint inverted.
// Cells are recorded in non-decreasing distance, so the first
// minimum-elevation cell recorded is a closest start.
func fromAnyReverse(g *heightmap.Grid, o Options, goal heightmap.Coordinate) (Result, error) {
	w := newWalker(g, o, true)
	hit, ok, err := w.run(goal, func(c heightmap.Coordinate) bool {
		return g.LevelAt(c) == elevation.Min
	})
	res := Result{Visited: w.cache.len(), Expanded: w.expanded}
	if err != nil {
		return res, fmt.Errorf("climb: reverse search from %v: %w", goal, err)
	}
	if !ok {
		o.Logger.Debug("reverse search done", "goal", goal, "result", res.String(), "visited", res.Visited)
		return res, nil
	}

	res.Steps, _ = w.cache.distance(hit)
	res.Reachable = true
	res.Start = hit
	if o.ReturnPath {
		// parent links point toward the goal
		res.Path = w.cache.path(hit)
		slices.Reverse(res.Path)
	}
	o.Logger.Debug("reverse search done", "goal", goal, "result", res.String(), "start", hit, "visited", res.Visited)
	return res, nil
}
