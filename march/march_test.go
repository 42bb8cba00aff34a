package march

import (
	"math"
	"testing"

	"github.com/katalvlaran/isogrid/celltree"
	"github.com/katalvlaran/isogrid/dual"
	"github.com/katalvlaran/isogrid/evalcache"
	"github.com/katalvlaran/isogrid/volume"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

type sphereFunc struct{ radius float64 }

func (s sphereFunc) Eval(p r3.Vec) float64 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z - s.radius*s.radius
}

func (s sphereFunc) Grad(p r3.Vec) r3.Vec {
	return r3.Vec{X: 2 * p.X, Y: 2 * p.Y, Z: 2 * p.Z}
}

type constFunc struct{ v float64 }

func (c constFunc) Eval(r3.Vec) float64 { return c.v }
func (c constFunc) Grad(r3.Vec) r3.Vec  { return r3.Vec{} }

type slabFunc struct{}

func (slabFunc) Eval(p r3.Vec) float64 { return p.Z }
func (slabFunc) Grad(r3.Vec) r3.Vec    { return r3.Vec{Z: 1} }

func runPipeline(t *testing.T, fn volume.VolumetricFunc, vol volume.SDFVolume, minDepth, maxDepth int) MeshBuffers {
	t.Helper()
	cache := evalcache.New(fn, vol)
	coll, err := celltree.Build(cache, minDepth, maxDepth)
	require.NoError(t, err)
	for _, job := range dual.CollectJobs(coll) {
		job.Solve(cache)
	}

	return Run(cache, coll)
}

func TestSphereVerticesLieNearRadius(t *testing.T) {
	vol := volume.SDFVolume{Base: r3.Vec{X: -5, Y: -5, Z: -5}, Size: r3.Vec{X: 10, Y: 10, Z: 10}}
	mesh := runPipeline(t, sphereFunc{radius: 3}, vol, 3, 4)

	require.NotEmpty(t, mesh.Verts)
	for _, v := range mesh.Verts {
		r := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
		require.GreaterOrEqual(t, r, 2.99)
		require.LessOrEqual(t, r, 3.01)
	}
}

func TestEmptyFieldProducesEmptyMesh(t *testing.T) {
	vol := volume.SDFVolume{Base: r3.Vec{X: -5, Y: -5, Z: -5}, Size: r3.Vec{X: 10, Y: 10, Z: 10}}
	mesh := runPipeline(t, constFunc{v: 1}, vol, 2, 3)

	require.Empty(t, mesh.Verts)
	require.Empty(t, mesh.Indices)
}

func TestSlabVerticesAreNearZeroZ(t *testing.T) {
	vol := volume.SDFVolume{Base: r3.Vec{X: -1, Y: -1, Z: -1}, Size: r3.Vec{X: 2, Y: 2, Z: 2}}
	mesh := runPipeline(t, slabFunc{}, vol, 3, 4)

	require.NotEmpty(t, mesh.Verts)
	for _, v := range mesh.Verts {
		require.Less(t, math.Abs(v.Z), 1e-6)
	}
}

func TestIndicesFormTriples(t *testing.T) {
	vol := volume.SDFVolume{Base: r3.Vec{X: -5, Y: -5, Z: -5}, Size: r3.Vec{X: 10, Y: 10, Z: 10}}
	mesh := runPipeline(t, sphereFunc{radius: 3}, vol, 3, 4)

	require.Zero(t, len(mesh.Indices)%3)
	for _, idx := range mesh.Indices {
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(mesh.Verts))
	}
}
