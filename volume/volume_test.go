package volume

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestRealPos(t *testing.T) {
	v := SDFVolume{Base: r3.Vec{X: -5, Y: -5, Z: -5}, Size: r3.Vec{X: 10, Y: 10, Z: 10}}
	p := v.RealPos(r3.Vec{X: 0.5, Y: 0.5, Z: 0.5})
	require.InDelta(t, 0.0, p.X, 1e-12)
	require.InDelta(t, 0.0, p.Y, 1e-12)
	require.InDelta(t, 0.0, p.Z, 1e-12)
}

func TestNormPosInRoundTrip(t *testing.T) {
	v := SDFVolume{Base: r3.Vec{X: -1, Y: -2, Z: -3}, Size: r3.Vec{X: 2, Y: 4, Z: 6}}
	world := v.RealPos(r3.Vec{X: 0.25, Y: 0.75, Z: 0.1})
	norm := v.NormPosIn([]float64{world.X, world.Y, world.Z}, []int{0, 1, 2})
	require.InDelta(t, 0.25, norm[0], 1e-9)
	require.InDelta(t, 0.75, norm[1], 1e-9)
	require.InDelta(t, 0.1, norm[2], 1e-9)
}
