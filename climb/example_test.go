package climb_test

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/elevation"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// ExampleShortestPath solves the reference heightmap from the start marker.
func ExampleShortestPath() {
	g, _ := heightmap.Parse([]byte(sample))
	start, _ := g.Find(elevation.Start)
	goal, _ := g.Find(elevation.Goal)

	res, err := climb.ShortestPath(g, start, goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("steps:", res)
	// Output:
	// steps: 31
}

// ExampleShortestPathFromAny compares both orchestrator strategies.
func ExampleShortestPathFromAny() {
	g, _ := heightmap.Parse([]byte(sample))
	goal, _ := g.Find(elevation.Goal)

	perStart, _ := climb.ShortestPathFromAny(g, goal)
	reverse, _ := climb.ShortestPathFromAny(g, goal, climb.WithStrategy(climb.StrategyReverse))
	fmt.Println("per-start:", perStart)
	fmt.Println("reverse:", reverse)
	// Output:
	// per-start: 29
	// reverse: 29
}

// ExampleResult_Distance distinguishes an unreachable goal from a distance.
func ExampleResult_Distance() {
	g, _ := heightmap.Parse([]byte("Sbcd\nzzzz\nzzzE"))
	start, _ := g.Find(elevation.Start)
	goal, _ := g.Find(elevation.Goal)

	res, _ := climb.ShortestPath(g, start, goal)
	if _, ok := res.Distance(); !ok {
		fmt.Println(res)
	}
	// Output:
	// unreachable
}
