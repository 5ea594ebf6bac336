// Package hillclimb finds the fewest steps across an elevation heightmap when
// each step may climb at most one level.
//
// What is inside?
//
//	elevation/:     symbol → level mapping ('a'..'z', start 'S', goal 'E') and the climb rule
//	heightmap/:     immutable rectangular grid: parsing, bounds, neighbors, marker lookup
//	climb/:         breadth-first search from one start, and from every lowest cell
//	cmd/hillclimb:  command-line harness printing both answers
//
// Quick ASCII example: the reference heightmap. S reaches E in 31 steps; the
// best lowest cell ('a' at the bottom-left) reaches it in 29.
//
//	Sabqponm
//	abcryxxl
//	accszExk
//	acctuvwj
//	abdefghi
//
// Usage:
//
//	g, _ := heightmap.Parse(input)
//	start, _ := g.Find(elevation.Start)
//	goal, _ := g.Find(elevation.Goal)
//	res, _ := climb.ShortestPath(g, start, goal)
//	best, _ := climb.ShortestPathFromAny(g, goal, climb.WithStrategy(climb.StrategyReverse))
//
//	go get github.com/katalvlaran/hillclimb
package hillclimb
