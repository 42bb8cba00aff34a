package subspace

import (
	"github.com/katalvlaran/isogrid/partid"
	"github.com/katalvlaran/isogrid/pcoord"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	_ Space = R3Space{}
	_ Space = R2Space{}
	_ Space = R1Space{}
)

// Space is implemented by R3Space, R2Space, and R1Space, letting the dual
// solver and marching tetrahedra operate on "a subspace of some dimension"
// without a generic type parameter: dimension is simply len(FreeDims()).
type Space interface {
	ProjectCoord(c pcoord.Coord) pcoord.Coord
	UnprojectCoord(c pcoord.Coord) pcoord.Coord
	ProjectVec(v r3.Vec) []float64
	UnprojectVec(v []float64) r3.Vec
	FreeDims() []int
}

// ProjectCoord is the identity: R3Space has no fixed component.
func (R3Space) ProjectCoord(c pcoord.Coord) pcoord.Coord {
	return c
}

// UnprojectCoord is the identity: R3Space has no fixed component.
func (R3Space) UnprojectCoord(c pcoord.Coord) pcoord.Coord {
	return c
}

// ProjectVec is the identity: R3Space has no fixed component.
func (R3Space) ProjectVec(v r3.Vec) []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// UnprojectVec is the identity: R3Space has no fixed component.
func (R3Space) UnprojectVec(v []float64) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// ProjectCoord drops the fixed component, returning the face-local Coord2
// (length 2) in [freeDims[0], freeDims[1]] order.
func (s R2Space) ProjectCoord(c pcoord.Coord) pcoord.Coord {
	free := s.Axis.freeDims()

	return pcoord.Coord{c[free[0]], c[free[1]]}
}

// UnprojectCoord reinserts Slab at the fixed component, returning a Coord3.
func (s R2Space) UnprojectCoord(c pcoord.Coord) pcoord.Coord {
	out := make(pcoord.Coord, 3)
	out[s.Axis.fixedDim()] = s.Slab
	free := s.Axis.freeDims()
	out[free[0]] = c[0]
	out[free[1]] = c[1]

	return out
}

// ProjectVec drops the fixed component of a 3-vector, keeping only its
// in-plane components.
func (s R2Space) ProjectVec(v r3.Vec) []float64 {
	free := s.Axis.freeDims()

	return []float64{component(v, free[0]), component(v, free[1])}
}

// UnprojectVec fills the fixed component with Slab's normalized position,
// placing v's two components at the free dimensions.
func (s R2Space) UnprojectVec(v []float64) r3.Vec {
	var out [3]float64
	out[s.Axis.fixedDim()] = partid.NormPos(s.Slab)
	free := s.Axis.freeDims()
	out[free[0]] = v[0]
	out[free[1]] = v[1]

	return r3.Vec{X: out[0], Y: out[1], Z: out[2]}
}

// ProjectCoord drops the two fixed components, returning the edge-local
// Coord1.
func (s R1Space) ProjectCoord(c pcoord.Coord) pcoord.Coord {
	return pcoord.Coord{c[s.Axis.freeDim()]}
}

// UnprojectCoord reinserts Slab at the two fixed components, returning a
// Coord3.
func (s R1Space) UnprojectCoord(c pcoord.Coord) pcoord.Coord {
	out := make(pcoord.Coord, 3)
	fixed := s.Axis.fixedDims()
	out[fixed[0]] = s.Slab[0]
	out[fixed[1]] = s.Slab[1]
	out[s.Axis.freeDim()] = c[0]

	return out
}

// ProjectVec drops the two fixed components of a 3-vector.
func (s R1Space) ProjectVec(v r3.Vec) []float64 {
	return []float64{component(v, s.Axis.freeDim())}
}

// UnprojectVec fills the two fixed components with their slabs' normalized
// positions, placing v's single component at the free dimension.
func (s R1Space) UnprojectVec(v []float64) r3.Vec {
	var out [3]float64
	fixed := s.Axis.fixedDims()
	out[fixed[0]] = partid.NormPos(s.Slab[0])
	out[fixed[1]] = partid.NormPos(s.Slab[1])
	out[s.Axis.freeDim()] = v[0]

	return r3.Vec{X: out[0], Y: out[1], Z: out[2]}
}

func component(v r3.Vec, dim int) float64 {
	switch dim {
	case DimX:
		return v.X
	case DimY:
		return v.Y
	default:
		return v.Z
	}
}

// FacesOf enumerates the 6 face-slabs of volume cell coordinate c: for each
// of the 3 face axes, the low and high parent of c's fixed component.
func FacesOf(c pcoord.Coord) []R2Space {
	lo, hi := c.LowParents(), c.HighParents()
	axes := [3]FaceAxis{YZFace, XZFace, XYFace}
	out := make([]R2Space, 0, 6)
	for _, a := range axes {
		d := a.fixedDim()
		out = append(out, R2Space{Axis: a, Slab: lo[d]}, R2Space{Axis: a, Slab: hi[d]})
	}

	return out
}

// EdgesOf enumerates the 12 edge-slabs of volume cell coordinate c: for
// each of the 3 edge axes, the 4 combinations of low/high parent of c's two
// fixed components.
func EdgesOf(c pcoord.Coord) []R1Space {
	lo, hi := c.LowParents(), c.HighParents()
	axes := [3]EdgeAxis{XEdge, YEdge, ZEdge}
	out := make([]R1Space, 0, 12)
	for _, a := range axes {
		f := a.fixedDims()
		vals0 := [2]partid.ID{lo[f[0]], hi[f[0]]}
		vals1 := [2]partid.ID{lo[f[1]], hi[f[1]]}
		for _, v0 := range vals0 {
			for _, v1 := range vals1 {
				out = append(out, R1Space{Axis: a, Slab: [2]partid.ID{v0, v1}})
			}
		}
	}

	return out
}

// FaceEdge pairs an edge's local Coord1 with the R1Space it lives in.
type FaceEdge struct {
	Coord pcoord.Coord
	Space R1Space
}

// Edges returns the 4 (coord, R1Space) pairs for faceCoord's four edges:
// for each of the face's two free dimensions, fixing it at its low/high
// parent yields an edge running along the other free dimension.
func (s R2Space) Edges(faceCoord pcoord.Coord) []FaceEdge {
	free := s.Axis.freeDims()
	faceFixedDim := s.Axis.fixedDim()
	out := make([]FaceEdge, 0, 4)
	for i := 0; i < 2; i++ {
		fixedFreeDim := free[i]
		runningDim := free[1-i]
		runningAxis := edgeAxisForFreeDim(runningDim)
		parents := [2]partid.ID{partid.LowParent(faceCoord[i]), partid.HighParent(faceCoord[i])}
		for _, parentVal := range parents {
			slab := slabPair(runningAxis, faceFixedDim, s.Slab, fixedFreeDim, parentVal)
			edgeCoord := pcoord.Coord{faceCoord[1-i]}
			out = append(out, FaceEdge{Coord: edgeCoord, Space: R1Space{Axis: runningAxis, Slab: slab}})
		}
	}

	return out
}

// slabPair assembles an R1Space's Slab pair from two (dim, value) entries,
// ordered by the edge axis's fixedDims().
func slabPair(axis EdgeAxis, dimA int, valA partid.ID, dimB int, valB partid.ID) [2]partid.ID {
	fixed := axis.fixedDims()
	var out [2]partid.ID
	for i, d := range fixed {
		switch d {
		case dimA:
			out[i] = valA
		case dimB:
			out[i] = valB
		}
	}

	return out
}
