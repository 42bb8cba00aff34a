package pcoord

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/isogrid/partid"
)

// Coord is an N-tuple of PartitionIDs, one per axis of the subspace it
// belongs to. Its dimension is len(Coord); valid dimensions are 1, 2, 3.
type Coord []partid.ID

// IsRoot reports whether any component of c is the root ID — c then spans
// (at least along that axis) the whole unit interval.
func (c Coord) IsRoot() bool {
	for _, id := range c {
		if partid.IsRoot(id) {
			return true
		}
	}

	return false
}

// Clone returns an independent copy of c.
func (c Coord) Clone() Coord {
	out := make(Coord, len(c))
	copy(out, c)

	return out
}

// Equal reports whether c and other have identical components.
func (c Coord) Equal(other Coord) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}

	return true
}

// Less orders Coord lexicographically by component ID.
func (c Coord) Less(other Coord) bool {
	n := len(c)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if c[i] != other[i] {
			return c[i] < other[i]
		}
	}

	return len(c) < len(other)
}

// NormPos maps each component to its normalized position in [0,1].
func (c Coord) NormPos() []float64 {
	out := make([]float64, len(c))
	for i, id := range c {
		out[i] = partid.NormPos(id)
	}

	return out
}

// LowParents returns the componentwise low parent of c, one level
// shallower than c along every axis.
func (c Coord) LowParents() Coord {
	out := make(Coord, len(c))
	for i, id := range c {
		out[i] = partid.LowParent(id)
	}

	return out
}

// HighParents returns the componentwise high parent of c, one level
// shallower than c along every axis.
func (c Coord) HighParents() Coord {
	out := make(Coord, len(c))
	for i, id := range c {
		out[i] = partid.HighParent(id)
	}

	return out
}

// TreeIndex combines the per-component partid.TreeIndex into a single
// child-slot index in [0, 2^dim), bit d selecting dimension d's branch.
func (c Coord) TreeIndex() int {
	idx := 0
	for d, id := range c {
		idx |= partid.TreeIndex(id) << uint(d)
	}

	return idx
}

// IDAtChild re-roots every component of c to the child containing it,
// matching partid.IDAtChild applied per axis.
func (c Coord) IDAtChild() Coord {
	out := make(Coord, len(c))
	for i, id := range c {
		out[i] = partid.IDAtChild(id)
	}

	return out
}

// ChildCoords enumerates the 2^dim combinations of low/high child per
// component (the children of c's cell), in deterministic order: combination
// index 0..2^dim-1, bit d of the index selecting low (0) or high (1) child
// for dimension d.
func (c Coord) ChildCoords() []Coord {
	return combos(c, partid.LowChild, partid.HighChild)
}

// VertexCoords enumerates the 2^dim corners of c's cell: the combinations of
// low/high parent per component, in the same deterministic bit order as
// ChildCoords.
func (c Coord) VertexCoords() []Coord {
	return combos(c, partid.LowParent, partid.HighParent)
}

// combos enumerates the 2^dim combinations of lo(id)/hi(id) per component of
// c, bit d of the combination index selecting lo (0) or hi (1) for
// dimension d.
func combos(c Coord, lo, hi func(partid.ID) partid.ID) []Coord {
	dim := len(c)
	n := 1 << uint(dim)
	out := make([]Coord, n)
	for mask := 0; mask < n; mask++ {
		cc := make(Coord, dim)
		for d := 0; d < dim; d++ {
			if (mask>>uint(d))&1 == 1 {
				cc[d] = hi(c[d])
			} else {
				cc[d] = lo(c[d])
			}
		}
		out[mask] = cc
	}

	return out
}

// Key returns a string uniquely identifying c's component values, suitable
// as a map key — the same "%d,%d"-style coordinate-to-string convention
// gridgraph.vertexID uses for grid cells, generalized to N components.
func (c Coord) Key() string {
	var b strings.Builder
	for i, id := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}

	return b.String()
}
