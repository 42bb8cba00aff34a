package tetra

import (
	"testing"

	"github.com/katalvlaran/isogrid/celltree"
	"github.com/katalvlaran/isogrid/dual"
	"github.com/katalvlaran/isogrid/evalcache"
	"github.com/katalvlaran/isogrid/volume"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

type sphereFunc struct{}

func (sphereFunc) Eval(p r3.Vec) float64 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z - 1
}

func (sphereFunc) Grad(p r3.Vec) r3.Vec {
	return r3.Vec{X: 2 * p.X, Y: 2 * p.Y, Z: 2 * p.Z}
}

func buildSphereCollections(t *testing.T) (*evalcache.Cache, *celltree.Collections) {
	t.Helper()
	vol := volume.SDFVolume{Base: r3.Vec{X: -2, Y: -2, Z: -2}, Size: r3.Vec{X: 4, Y: 4, Z: 4}}
	cache := evalcache.New(sphereFunc{}, vol)
	coll, err := celltree.Build(cache, 2, 3)
	require.NoError(t, err)

	for _, job := range dual.CollectJobs(coll) {
		job.Solve(cache)
	}

	return cache, coll
}

func TestForEachEmitsTetrahedraInPairs(t *testing.T) {
	_, coll := buildSphereCollections(t)

	count := 0
	ForEach(coll, func(Tetra) { count++ })

	require.NotZero(t, count)
	require.Zero(t, count%2, "tetrahedra are always emitted two at a time")
}

func TestVertPosAndValAreComputable(t *testing.T) {
	cache, coll := buildSphereCollections(t)

	var sample Tetra
	var have bool
	ForEach(coll, func(tet Tetra) {
		if !have {
			sample = tet
			have = true
		}
	})
	require.True(t, have)

	for _, v := range sample {
		_ = v.Pos(cache)
		_ = v.Val(cache)
		require.NotEmpty(t, v.Key())
	}
}
