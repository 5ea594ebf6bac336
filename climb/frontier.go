package climb

import (
	list "github.com/bahlo/generic-list-go"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// frontier is the FIFO queue of cells awaiting expansion: push appends at
// the back and pop removes from the front. LIFO order would break the
// minimal-distance guarantee.
type frontier struct {
	items *list.List[heightmap.Coordinate]
}

func newFrontier() *frontier {
	return &frontier{items: list.New[heightmap.Coordinate]()}
}

func (f *frontier) push(c heightmap.Coordinate) {
	f.items.PushBack(c)
}

// pop removes the oldest cell; ok is false when the queue is empty.
func (f *frontier) pop() (c heightmap.Coordinate, ok bool) {
	e := f.items.Front()
	if e == nil {
		return c, false
	}
	return f.items.Remove(e), true
}

func (f *frontier) len() int {
	return f.items.Len()
}
