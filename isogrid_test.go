package isogrid

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/isogrid/volume"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

type fieldFunc struct {
	eval func(r3.Vec) float64
	grad func(r3.Vec) r3.Vec
}

func (f fieldFunc) Eval(p r3.Vec) float64 { return f.eval(p) }
func (f fieldFunc) Grad(p r3.Vec) r3.Vec  { return f.grad(p) }

func sphereField(cx, cy, cz, radius float64) fieldFunc {
	return fieldFunc{
		eval: func(p r3.Vec) float64 {
			dx, dy, dz := p.X-cx, p.Y-cy, p.Z-cz

			return dx*dx + dy*dy + dz*dz - radius*radius
		},
		grad: func(p r3.Vec) r3.Vec {
			return r3.Vec{X: 2 * (p.X - cx), Y: 2 * (p.Y - cy), Z: 2 * (p.Z - cz)}
		},
	}
}

func TestFindIsosurfaceSphere(t *testing.T) {
	fn := sphereField(0, 0, 0, 3)
	vol := volume.SDFVolume{Base: r3.Vec{X: -5, Y: -5, Z: -5}, Size: r3.Vec{X: 10, Y: 10, Z: 10}}

	mesh, err := FindIsosurface(fn, vol, NewSolverSettings())
	require.NoError(t, err)
	require.NotEmpty(t, mesh.Verts)

	for _, v := range mesh.Verts {
		r := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
		require.GreaterOrEqual(t, r, 2.99)
		require.LessOrEqual(t, r, 3.01)
	}
}

func TestFindIsosurfaceEmptyField(t *testing.T) {
	fn := fieldFunc{
		eval: func(r3.Vec) float64 { return 1 },
		grad: func(r3.Vec) r3.Vec { return r3.Vec{} },
	}
	vol := volume.SDFVolume{Base: r3.Vec{X: -5, Y: -5, Z: -5}, Size: r3.Vec{X: 10, Y: 10, Z: 10}}

	mesh, err := FindIsosurface(fn, vol, NewSolverSettings())
	require.NoError(t, err)
	require.Empty(t, mesh.Verts)
	require.Empty(t, mesh.Indices)
}

func TestFindIsosurfaceCSGUnion(t *testing.T) {
	a := sphereField(1, 1, 2, 2)
	b := sphereField(3, 1, 2, 1)
	fn := fieldFunc{
		eval: func(p r3.Vec) float64 {
			av, bv := a.Eval(p), b.Eval(p)
			if av < bv {
				return av
			}

			return bv
		},
		grad: func(p r3.Vec) r3.Vec {
			if a.Eval(p) < b.Eval(p) {
				return a.Grad(p)
			}

			return b.Grad(p)
		},
	}
	vol := volume.SDFVolume{Base: r3.Vec{X: -5, Y: -5, Z: -5}, Size: r3.Vec{X: 10, Y: 10, Z: 10}}

	settings := NewSolverSettings(WithMinOctreeDepth(4), WithMaxOctreeDepth(5))
	mesh, err := FindIsosurface(fn, vol, settings)
	require.NoError(t, err)
	require.NotEmpty(t, mesh.Verts)

	for _, v := range mesh.Verts {
		da := math.Abs(math.Sqrt((v.X-1)*(v.X-1)+(v.Y-1)*(v.Y-1)+(v.Z-2)*(v.Z-2)) - 2)
		db := math.Abs(math.Sqrt((v.X-3)*(v.X-3)+(v.Y-1)*(v.Y-1)+(v.Z-2)*(v.Z-2)) - 1)
		require.True(t, da <= 0.05 || db <= 0.05)
	}
}

func TestFindIsosurfaceSlab(t *testing.T) {
	fn := fieldFunc{
		eval: func(p r3.Vec) float64 { return p.Z },
		grad: func(r3.Vec) r3.Vec { return r3.Vec{Z: 1} },
	}
	vol := volume.SDFVolume{Base: r3.Vec{X: -1, Y: -1, Z: -1}, Size: r3.Vec{X: 2, Y: 2, Z: 2}}

	mesh, err := FindIsosurface(fn, vol, NewSolverSettings())
	require.NoError(t, err)
	require.NotEmpty(t, mesh.Verts)
	for _, v := range mesh.Verts {
		require.Less(t, math.Abs(v.Z), 1e-6)
	}
}

func TestFindIsosurfaceDeterministicAcrossWorkerCounts(t *testing.T) {
	fn := sphereField(0, 0, 0, 3)
	vol := volume.SDFVolume{Base: r3.Vec{X: -5, Y: -5, Z: -5}, Size: r3.Vec{X: 10, Y: 10, Z: 10}}

	sequential, err := FindIsosurface(fn, vol, NewSolverSettings(WithWorkerThreads(0)))
	require.NoError(t, err)
	parallel, err := FindIsosurface(fn, vol, NewSolverSettings(WithWorkerThreads(4)))
	require.NoError(t, err)

	require.Equal(t, canonicalTriangles(sequential), canonicalTriangles(parallel))
}

// canonicalTriangles renders a mesh's triangles as sorted (x,y,z) triples
// per vertex, sorted lexicographically, so that two meshes differing only
// by vertex emission order compare equal.
func canonicalTriangles(mesh MeshBuffers) [][3]r3.Vec {
	var tris [][3]r3.Vec
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		tri := [3]r3.Vec{mesh.Verts[mesh.Indices[i]], mesh.Verts[mesh.Indices[i+1]], mesh.Verts[mesh.Indices[i+2]]}
		sort.Slice(tri[:], func(a, b int) bool { return lessVec(tri[a], tri[b]) })
		tris = append(tris, tri)
	}
	sort.Slice(tris, func(i, j int) bool {
		for k := 0; k < 3; k++ {
			if tris[i][k] != tris[j][k] {
				return lessVec(tris[i][k], tris[j][k])
			}
		}

		return false
	})

	return tris
}

func lessVec(a, b r3.Vec) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}

	return a.Z < b.Z
}

func TestSolverSettingsValidation(t *testing.T) {
	_, err := FindIsosurface(sphereField(0, 0, 0, 1), volume.SDFVolume{Size: r3.Vec{X: 1, Y: 1, Z: 1}},
		NewSolverSettings(WithMaxOctreeDepth(63)))
	require.Error(t, err)

	_, err = FindIsosurface(sphereField(0, 0, 0, 1), volume.SDFVolume{Size: r3.Vec{X: 1, Y: 1, Z: 1}},
		NewSolverSettings(WithMinOctreeDepth(5), WithMaxOctreeDepth(4)))
	require.Error(t, err)
}
