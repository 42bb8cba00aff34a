package march

import (
	"math/bits"
	"sort"

	"github.com/katalvlaran/isogrid/celltree"
	"github.com/katalvlaran/isogrid/evalcache"
	"github.com/katalvlaran/isogrid/tetra"
	"gonum.org/v1/gonum/spatial/r3"
)

// Run executes marching tetrahedra over every tetrahedron in coll's
// simplicial complex and returns the assembled mesh buffers.
func Run(cache *evalcache.Cache, coll *celltree.Collections) MeshBuffers {
	b := newBuilder()
	tetra.ForEach(coll, func(t tetra.Tetra) {
		processTetra(cache, b, t)
	})

	return b.buffers()
}

func processTetra(cache *evalcache.Cache, b *builder, t tetra.Tetra) {
	var vals [4]float64
	mask := 0
	for i, v := range t {
		vals[i] = v.Val(cache)
		if vals[i] < 0 {
			mask |= 1 << uint(i)
		}
	}

	switch bits.OnesCount(uint(mask)) {
	case 0, 4:
		return
	case 1:
		inner := soleSetBit(mask)
		others := otherIndices(inner)
		a := edgeVertex(cache, b, t, inner, others[0])
		c := edgeVertex(cache, b, t, inner, others[1])
		d := edgeVertex(cache, b, t, inner, others[2])
		b.triangle(a, c, d)
	case 3:
		outer := soleSetBit(mask ^ 0xF)
		insiders := otherIndices(outer)
		a := edgeVertex(cache, b, t, insiders[0], outer)
		c := edgeVertex(cache, b, t, insiders[1], outer)
		d := edgeVertex(cache, b, t, insiders[2], outer)
		b.triangle(a, c, d)
	case 2:
		insiders, outsiders := splitPairs(mask)
		p0, p1 := insiders[0], insiders[1]
		q0, q1 := outsiders[0], outsiders[1]
		v00 := edgeVertex(cache, b, t, p0, q0)
		v01 := edgeVertex(cache, b, t, p0, q1)
		v11 := edgeVertex(cache, b, t, p1, q1)
		v10 := edgeVertex(cache, b, t, p1, q0)
		b.triangle(v00, v01, v11)
		b.triangle(v00, v11, v10)
	}
}

func soleSetBit(mask int) int {
	for i := 0; i < 4; i++ {
		if mask&(1<<uint(i)) != 0 {
			return i
		}
	}

	return -1
}

// otherIndices returns the three indices other than i, ascending.
func otherIndices(i int) [3]int {
	var out [3]int
	n := 0
	for j := 0; j < 4; j++ {
		if j != i {
			out[n] = j
			n++
		}
	}

	return out
}

func splitPairs(mask int) (insiders, outsiders [2]int) {
	var ins, outs []int
	for i := 0; i < 4; i++ {
		if mask&(1<<uint(i)) != 0 {
			ins = append(ins, i)
		} else {
			outs = append(outs, i)
		}
	}
	sort.Ints(ins)
	sort.Ints(outs)

	return [2]int{ins[0], ins[1]}, [2]int{outs[0], outs[1]}
}

// edgeVertex returns the (deduplicated) vertex index for the crossing
// between t[innerIdx] (inside, val < 0) and t[outerIdx] (outside),
// computing and interning the interpolated position on first sight.
func edgeVertex(cache *evalcache.Cache, b *builder, t tetra.Tetra, innerIdx, outerIdx int) int {
	inner, outer := t[innerIdx], t[outerIdx]
	key := inner.Key() + "|" + outer.Key()
	if idx, ok := b.lookup[key]; ok {
		return idx
	}

	valIn, valOut := inner.Val(cache), outer.Val(cache)
	tt := 0.0
	if denom := valOut - valIn; denom != 0 {
		tt = clamp(-valIn/denom, 0, 1)
	}

	posIn, posOut := inner.Pos(cache), outer.Pos(cache)
	pos := r3.Vec{
		X: posIn.X*(1-tt) + posOut.X*tt,
		Y: posIn.Y*(1-tt) + posOut.Y*tt,
		Z: posIn.Z*(1-tt) + posOut.Z*tt,
	}

	return b.vertexFor(key, pos)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
