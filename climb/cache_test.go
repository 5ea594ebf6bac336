package climb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/heightmap"
)

func grid3x3(t *testing.T) *heightmap.Grid {
	t.Helper()
	g, err := heightmap.Parse([]byte("abc\nbcd\ncde"))
	require.NoError(t, err)
	return g
}

// TestVisitCache_FirstWriteWins refuses to overwrite a recorded distance.
func TestVisitCache_FirstWriteWins(t *testing.T) {
	g := grid3x3(t)
	vc := newVisitCache(g)
	root := heightmap.Coordinate{}
	c := heightmap.Coordinate{Row: 1, Col: 1}

	_, ok := vc.distance(c)
	assert.False(t, ok, "fresh cache holds no distances")
	assert.False(t, vc.has(c))

	require.True(t, vc.record(root, 0, root))
	require.True(t, vc.record(c, 2, root))
	assert.False(t, vc.record(c, 1, root))

	d, ok := vc.distance(c)
	assert.True(t, ok)
	assert.Equal(t, 2, d)
	assert.Equal(t, 2, vc.len())
}

// TestVisitCache_Path follows parent links back to the root.
func TestVisitCache_Path(t *testing.T) {
	g := grid3x3(t)
	vc := newVisitCache(g)
	a := heightmap.Coordinate{Row: 0, Col: 0}
	b := heightmap.Coordinate{Row: 0, Col: 1}
	c := heightmap.Coordinate{Row: 1, Col: 1}

	vc.record(a, 0, a)
	vc.record(b, 1, a)
	vc.record(c, 2, b)

	assert.Equal(t, []heightmap.Coordinate{a, b, c}, vc.path(c))
	assert.Equal(t, []heightmap.Coordinate{a}, vc.path(a))
}

// TestVisitCache_FreshPerSearch makes sure two caches never share storage.
func TestVisitCache_FreshPerSearch(t *testing.T) {
	g := grid3x3(t)
	first := newVisitCache(g)
	first.record(heightmap.Coordinate{}, 0, heightmap.Coordinate{})

	second := newVisitCache(g)
	assert.False(t, second.has(heightmap.Coordinate{}))
	assert.Len(t, second.entries, g.Len())
}

// TestFrontier_FIFO pops cells in insertion order.
func TestFrontier_FIFO(t *testing.T) {
	f := newFrontier()
	_, ok := f.pop()
	assert.False(t, ok)

	in := []heightmap.Coordinate{{Row: 2}, {Col: 1}, {Row: 1, Col: 1}}
	for _, c := range in {
		f.push(c)
	}
	assert.Equal(t, 3, f.len())

	var out []heightmap.Coordinate
	for f.len() > 0 {
		c, ok := f.pop()
		require.True(t, ok)
		out = append(out, c)
	}
	assert.Equal(t, in, out)
}
