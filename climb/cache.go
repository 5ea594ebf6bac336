package climb

import "github.com/katalvlaran/hillclimb/heightmap"

// entry is one cell of the visit cache. set distinguishes "no distance yet"
// from a recorded distance; parent is the row-major index of the predecessor
// and equals the entry's own index for the search root.
type entry struct {
	steps  int
	parent int
	set    bool
}

// visitCache records the first (and therefore minimal) distance of each cell.
// It is allocated per search and never shared.
type visitCache struct {
	grid    *heightmap.Grid
	entries []entry
	count   int
}

func newVisitCache(g *heightmap.Grid) *visitCache {
	return &visitCache{
		grid:    g,
		entries: make([]entry, g.Len()),
	}
}

// has reports whether c already holds a distance.
func (vc *visitCache) has(c heightmap.Coordinate) bool {
	return vc.entries[vc.grid.Index(c)].set
}

// distance returns the recorded distance of c, if any.
func (vc *visitCache) distance(c heightmap.Coordinate) (int, bool) {
	e := vc.entries[vc.grid.Index(c)]
	return e.steps, e.set
}

// record stores steps for c reached from parent. First write wins: a cell
// that already holds a distance is left untouched and record returns false.
func (vc *visitCache) record(c heightmap.Coordinate, steps int, parent heightmap.Coordinate) bool {
	i := vc.grid.Index(c)
	if vc.entries[i].set {
		return false
	}
	vc.entries[i] = entry{steps: steps, parent: vc.grid.Index(parent), set: true}
	vc.count++
	return true
}

// len returns how many cells hold a distance.
func (vc *visitCache) len() int {
	return vc.count
}

// path walks parent links from c back to the root and returns root → c.
// c must hold a distance.
func (vc *visitCache) path(c heightmap.Coordinate) []heightmap.Coordinate {
	at := vc.grid.Index(c)
	out := make([]heightmap.Coordinate, vc.entries[at].steps+1)
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = vc.grid.Coordinate(at)
		at = vc.entries[at].parent
	}
	return out
}
