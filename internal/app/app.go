// Package app wires a heightmap, its markers, and the search engine into the
// two answers the command prints.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/elevation"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/internal/logging"
)

// Answers holds both results for one heightmap.
type Answers struct {
	// FromStart is the route from the start marker to the goal marker.
	FromStart climb.Result
	// FromLowest is the best route from any minimum-elevation cell.
	FromLowest climb.Result
}

// Solve locates the markers in g and runs both searches with opts.
// Missing or duplicated markers surface as heightmap errors.
func Solve(ctx context.Context, g *heightmap.Grid, opts ...climb.Option) (Answers, error) {
	logger := logging.FromContext(ctx)

	start, err := g.Find(elevation.Start)
	if err != nil {
		return Answers{}, fmt.Errorf("start marker: %w", err)
	}
	goal, err := g.Find(elevation.Goal)
	if err != nil {
		return Answers{}, fmt.Errorf("goal marker: %w", err)
	}
	logger.Debug("markers located", "start", start, "goal", goal, "rows", g.Rows(), "columns", g.Columns())

	opts = append([]climb.Option{climb.WithContext(ctx), climb.WithLogger(logger)}, opts...)

	began := time.Now()
	fromStart, err := climb.ShortestPath(g, start, goal, opts...)
	if err != nil {
		return Answers{}, fmt.Errorf("single-source search: %w", err)
	}
	logger.Debug("single-source search done", "result", fromStart.String(), "visited", fromStart.Visited, "elapsed", time.Since(began))

	began = time.Now()
	fromLowest, err := climb.ShortestPathFromAny(g, goal, opts...)
	if err != nil {
		return Answers{}, fmt.Errorf("multi-source search: %w", err)
	}
	logger.Debug("multi-source search done", "result", fromLowest.String(), "visited", fromLowest.Visited, "elapsed", time.Since(began))

	return Answers{FromStart: fromStart, FromLowest: fromLowest}, nil
}

// Run reads a heightmap from in, solves it, and writes one line per answer to out.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts ...climb.Option) error {
	g, err := heightmap.Read(in)
	if err != nil {
		return err
	}
	ans, err := Solve(ctx, g, opts...)
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Info("heightmap solved",
		"part1", ans.FromStart.String(), "part2", ans.FromLowest.String())
	_, err = fmt.Fprintf(out, "part 1: %s\npart 2: %s\n", ans.FromStart, ans.FromLowest)
	return err
}
