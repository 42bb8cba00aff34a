package evalcache

import (
	"github.com/katalvlaran/isogrid/pcoord"
	"github.com/katalvlaran/isogrid/subspace"
	"github.com/katalvlaran/isogrid/volume"
	"gonum.org/v1/gonum/spatial/r3"
)

// Cache memoizes f and grad f at PartitionCoord3 grid points, keyed by the
// coordinate's string form.
type Cache struct {
	vol   volume.SDFVolume
	fn    volume.VolumetricFunc
	vals  map[string]float64
	grads map[string]r3.Vec
}

// New returns a Cache over fn evaluated through vol's affine map.
func New(fn volume.VolumetricFunc, vol volume.SDFVolume) *Cache {
	return &Cache{
		vol:   vol,
		fn:    fn,
		vals:  make(map[string]float64),
		grads: make(map[string]r3.Vec),
	}
}

// Clone returns a new Cache over the same fn/vol with empty, independent
// backing maps — safe to hand to a separate worker goroutine.
func (c *Cache) Clone() *Cache {
	return New(c.fn, c.vol)
}

func (c *Cache) realPos(coord pcoord.Coord) r3.Vec {
	n := coord.NormPos()

	return c.vol.RealPos(r3.Vec{X: n[0], Y: n[1], Z: n[2]})
}

// RealPos maps a Coord3 to its world-space position, via the underlying
// volume's affine map.
func (c *Cache) RealPos(coord pcoord.Coord) r3.Vec {
	return c.realPos(coord)
}

// Eval returns f at coord, memoized.
func (c *Cache) Eval(coord pcoord.Coord) float64 {
	key := coord.Key()
	if v, ok := c.vals[key]; ok {
		return v
	}
	v := c.fn.Eval(c.realPos(coord))
	c.vals[key] = v

	return v
}

// EvalGrad returns grad f at coord, memoized.
func (c *Cache) EvalGrad(coord pcoord.Coord) r3.Vec {
	key := coord.Key()
	if g, ok := c.grads[key]; ok {
		return g
	}
	g := c.fn.Grad(c.realPos(coord))
	c.grads[key] = g

	return g
}

// EvalReal evaluates f directly at a world-space position, uncached.
func (c *Cache) EvalReal(pos r3.Vec) float64 {
	return c.fn.Eval(pos)
}

// EvalVec evaluates f at a normalized position expressed in the given
// subspace, uncached — used for dual points that are not grid-aligned.
func (c *Cache) EvalVec(normPos []float64, space subspace.Space) float64 {
	full := space.UnprojectVec(normPos)

	return c.fn.Eval(c.vol.RealPos(full))
}

// RealPosVec maps a normalized subspace position to its world-space
// position, without evaluating the field.
func (c *Cache) RealPosVec(normPos []float64, space subspace.Space) r3.Vec {
	return c.vol.RealPos(space.UnprojectVec(normPos))
}

// NormPosIn maps a world-space position restricted to freeDims back to
// the box's normalized frame — the inverse of the affine map, used to
// convert a dual solve's real-space result back to normalized coordinates.
func (c *Cache) NormPosIn(worldSub []float64, freeDims []int) []float64 {
	return c.vol.NormPosIn(worldSub, freeDims)
}
