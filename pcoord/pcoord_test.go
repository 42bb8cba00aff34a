package pcoord

import (
	"testing"

	"github.com/katalvlaran/isogrid/partid"
	"github.com/stretchr/testify/require"
)

func root3() Coord {
	return Coord{partid.RootID, partid.RootID, partid.RootID}
}

func TestIsRoot(t *testing.T) {
	c := root3()
	require.True(t, c.IsRoot())

	child := c.ChildCoords()[0]
	require.False(t, child.IsRoot())
}

func TestChildCoordsCount(t *testing.T) {
	c := root3()
	children := c.ChildCoords()
	require.Len(t, children, 8)

	// All children must be distinct.
	seen := make(map[string]bool)
	for _, ch := range children {
		require.False(t, seen[ch.Key()])
		seen[ch.Key()] = true
	}
}

func TestChildNormPosBetweenParentBounds(t *testing.T) {
	// For every child c' of c, c'.NormPos lies strictly between the
	// low/high parents of c'.
	c := root3()
	for _, child := range c.ChildCoords() {
		lo := child.LowParents().NormPos()
		hi := child.HighParents().NormPos()
		mid := child.NormPos()
		for d := range lo {
			require.Less(t, lo[d], mid[d])
			require.Less(t, mid[d], hi[d])
		}
	}
}

func TestVertexCoordsCount2D(t *testing.T) {
	c := Coord{partid.RootID, partid.RootID}
	verts := c.VertexCoords()
	require.Len(t, verts, 4)
}

func TestLessOrdering(t *testing.T) {
	a := Coord{1, 2}
	b := Coord{1, 3}
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
}

func TestKeyUniqueness(t *testing.T) {
	a := Coord{1, 2, 3}
	b := Coord{1, 23}
	require.NotEqual(t, a.Key(), b.Key())
}
