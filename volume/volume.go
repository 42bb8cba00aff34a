package volume

import "gonum.org/v1/gonum/spatial/r3"

// VolumetricFunc is the scalar field the caller supplies: Eval gives f(p),
// Grad gives the field's gradient at p. Both must be safe to call from
// multiple goroutines concurrently when the solver's worker-thread count
// (isogrid.WithWorkerThreads) is > 0;
// neither may mutate shared state observable across calls.
type VolumetricFunc interface {
	Eval(p r3.Vec) float64
	Grad(p r3.Vec) r3.Vec
}

// SDFVolume is the affine map between the normalized [0,1]^3 box and world
// coordinates: normalized n maps to Base + n .* Size.
type SDFVolume struct {
	Base r3.Vec
	Size r3.Vec
}

// RealPos maps a normalized position (all three components in [0,1], or
// more generally a reconstructed 3-vector from a lower-dimensional
// subspace) to world coordinates.
func (v SDFVolume) RealPos(normPos r3.Vec) r3.Vec {
	return r3.Vec{
		X: v.Base.X + normPos.X*v.Size.X,
		Y: v.Base.Y + normPos.Y*v.Size.Y,
		Z: v.Base.Z + normPos.Z*v.Size.Z,
	}
}

// NormPosIn maps a real-space position within a subspace back to the
// normalized frame of the box, using only the components named by
// freeDims (0=X, 1=Y, 2=Z) — the dimensions a dual solve's quadric
// minimizer actually produced a coordinate for.
func (v SDFVolume) NormPosIn(worldSub []float64, freeDims []int) []float64 {
	out := make([]float64, len(worldSub))
	for i, d := range freeDims {
		out[i] = (worldSub[i] - component(v.Base, d)) / component(v.Size, d)
	}

	return out
}

func component(v r3.Vec, dim int) float64 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
