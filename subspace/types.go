package subspace

import "github.com/katalvlaran/isogrid/partid"

// Global axis indices shared by pcoord.Coord and gonum's r3.Vec.
const (
	DimX = 0
	DimY = 1
	DimZ = 2
)

// FaceAxis names which plane an R2Space lies in: YZFace is the plane
// spanned by Y and Z (X is fixed), and so on. Declaration order is the
// comparison order: YZFace < XZFace < XYFace.
type FaceAxis uint8

const (
	YZFace FaceAxis = iota
	XZFace
	XYFace
)

// fixedDim returns the global dimension R2Space's slab fixes.
func (a FaceAxis) fixedDim() int {
	switch a {
	case YZFace:
		return DimX
	case XZFace:
		return DimY
	default:
		return DimZ
	}
}

// freeDims returns the two free (in-plane) global dimensions, ascending.
func (a FaceAxis) freeDims() [2]int {
	switch a {
	case YZFace:
		return [2]int{DimY, DimZ}
	case XZFace:
		return [2]int{DimX, DimZ}
	default:
		return [2]int{DimX, DimY}
	}
}

// EdgeAxis names which line an R1Space runs along: XEdge runs along X (Y
// and Z are fixed), and so on. Ordering: XEdge < YEdge < ZEdge.
type EdgeAxis uint8

const (
	XEdge EdgeAxis = iota
	YEdge
	ZEdge
)

// freeDim returns the single global dimension the edge runs along.
func (a EdgeAxis) freeDim() int {
	switch a {
	case XEdge:
		return DimX
	case YEdge:
		return DimY
	default:
		return DimZ
	}
}

// fixedDims returns the two global dimensions R1Space's slab fixes,
// ascending.
func (a EdgeAxis) fixedDims() [2]int {
	switch a {
	case XEdge:
		return [2]int{DimY, DimZ}
	case YEdge:
		return [2]int{DimX, DimZ}
	default:
		return [2]int{DimX, DimY}
	}
}

// edgeAxisForFreeDim maps a global dimension back to the EdgeAxis running
// along it.
func edgeAxisForFreeDim(d int) EdgeAxis {
	switch d {
	case DimX:
		return XEdge
	case DimY:
		return YEdge
	default:
		return ZEdge
	}
}

// R3Space is the identity subspace: the whole box. It has no fixed
// component and projects/unprojects are no-ops.
type R3Space struct{}

// FreeDims returns the three global dimensions, all free.
func (R3Space) FreeDims() []int {
	return []int{DimX, DimY, DimZ}
}

// FreeDims returns the two free (in-plane) global dimensions, ascending.
func (s R2Space) FreeDims() []int {
	free := s.Axis.freeDims()

	return []int{free[0], free[1]}
}

// FreeDims returns the single free (running) global dimension.
func (s R1Space) FreeDims() []int {
	return []int{s.Axis.freeDim()}
}

// R2Space is a plane perpendicular to Axis's fixed dimension, at Slab.
// R2Space is ordered first by Axis, then by Slab, and is map-key comparable.
type R2Space struct {
	Axis FaceAxis
	Slab partid.ID
}

// Less orders R2Space values by (Axis, Slab).
func (s R2Space) Less(o R2Space) bool {
	if s.Axis != o.Axis {
		return s.Axis < o.Axis
	}

	return s.Slab < o.Slab
}

// R1Space is a line along Axis's free dimension, at the two cross-slabs
// Slab (ordered by Axis.fixedDims()). R1Space is map-key comparable.
type R1Space struct {
	Axis EdgeAxis
	Slab [2]partid.ID
}

// Less orders R1Space values by (Axis, Slab[0], Slab[1]).
func (s R1Space) Less(o R1Space) bool {
	if s.Axis != o.Axis {
		return s.Axis < o.Axis
	}
	if s.Slab[0] != o.Slab[0] {
		return s.Slab[0] < o.Slab[0]
	}

	return s.Slab[1] < o.Slab[1]
}
