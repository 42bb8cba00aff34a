package dual

import (
	"testing"

	"github.com/katalvlaran/isogrid/celltree"
	"github.com/katalvlaran/isogrid/evalcache"
	"github.com/katalvlaran/isogrid/partid"
	"github.com/katalvlaran/isogrid/pcoord"
	"github.com/katalvlaran/isogrid/subspace"
	"github.com/katalvlaran/isogrid/volume"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

type planeFunc struct{ normal, point r3.Vec }

func (f planeFunc) Eval(p r3.Vec) float64 {
	d := r3.Vec{X: p.X - f.point.X, Y: p.Y - f.point.Y, Z: p.Z - f.point.Z}

	return f.normal.X*d.X + f.normal.Y*d.Y + f.normal.Z*d.Z
}

func (f planeFunc) Grad(r3.Vec) r3.Vec { return f.normal }

func unitVolume() volume.SDFVolume {
	return volume.SDFVolume{Base: r3.Vec{X: -1, Y: -1, Z: -1}, Size: r3.Vec{X: 2, Y: 2, Z: 2}}
}

func TestSolvePlacesDualOnPlane(t *testing.T) {
	// f = x, a plane through the origin perpendicular to X: the quadric
	// minimizer of a perfectly flat field's corner planes is any point on
	// x=0, so the solve should land near x=0 inside the cell.
	fn := planeFunc{normal: r3.Vec{X: 1}, point: r3.Vec{}}
	cache := evalcache.New(fn, unitVolume())
	coord := pcoord.Coord{partid.RootID, partid.RootID, partid.RootID}
	cell := celltree.NewCell(3)

	Solve(cache, subspace.R3Space{}, coord, cell)

	require.InDelta(t, 0.5, cell.DualPos[0], 1e-6)
}

func TestSolveFallsBackToCenterWhenDualLandsOutsideCell(t *testing.T) {
	// f = x - 0.9: the quadric minimizer lands at real x = 0.9, well
	// outside the low-child subcell (real x in [-1, 0]).
	fn := planeFunc{normal: r3.Vec{X: 1}, point: r3.Vec{X: 0.9}}
	cache := evalcache.New(fn, unitVolume())
	lowChild := partid.LowChild(partid.RootID)
	coord := pcoord.Coord{lowChild, lowChild, lowChild}
	cell := celltree.NewCell(3)

	Solve(cache, subspace.R3Space{}, coord, cell)

	center := coord.NormPos()
	require.Equal(t, center, cell.DualPos)
}

func TestCollectJobsGathersAllCollections(t *testing.T) {
	fn := planeFunc{normal: r3.Vec{X: 1}}
	cache := evalcache.New(fn, unitVolume())
	coll, err := celltree.Build(cache, 1, 2)
	require.NoError(t, err)

	jobs := CollectJobs(coll)
	require.NotEmpty(t, jobs)

	for _, j := range jobs {
		j.Solve(cache)
	}
}
