package tetra

import (
	"github.com/katalvlaran/isogrid/celltree"
	"github.com/katalvlaran/isogrid/evalcache"
	"github.com/katalvlaran/isogrid/pcoord"
	"github.com/katalvlaran/isogrid/subspace"
	"gonum.org/v1/gonum/spatial/r3"
)

// VertKind distinguishes the four roles a Simplex vertex can play.
type VertKind uint8

const (
	VertVolume VertKind = iota
	VertFace
	VertEdge
	VertCorner
)

// Vert is one vertex of a tetrahedron: a reference to a cell's dual (in
// its own subspace) for VertVolume/VertFace/VertEdge, or a volume-cell
// corner's own coordinate for VertCorner.
type Vert struct {
	Kind  VertKind
	Space subspace.Space
	Coord pcoord.Coord
	Cell  *celltree.Cell
}

// Key uniquely identifies v's logical identity: (subspace, coord) for a
// cell-dual reference, or the corner coordinate for a CellBoundary — the
// dedup key marching tetrahedra uses for crossing-edge vertices.
func (v Vert) Key() string {
	if v.Kind == VertCorner {
		return "corner:" + v.Coord.Key()
	}

	return subspace.KeyOf(v.Space) + ":" + v.Coord.Key()
}

// Pos returns v's world-space position: the unprojected dual for a
// cell-dual vertex, or the corner's own grid position for a CellBoundary.
func (v Vert) Pos(cache *evalcache.Cache) r3.Vec {
	if v.Kind == VertCorner {
		return cache.RealPos(v.Coord)
	}

	return cache.RealPosVec(v.Cell.DualPos, v.Space)
}

// Val returns v's field value: the corner's cached value for a
// CellBoundary, or the cell's memoized dual value (computed and cached on
// first access) for a cell-dual vertex.
func (v Vert) Val(cache *evalcache.Cache) float64 {
	if v.Kind == VertCorner {
		return cache.Eval(v.Coord)
	}
	if !v.Cell.HasDualVal() {
		v.Cell.SetDualVal(cache.EvalVec(v.Cell.DualPos, v.Space))
	}

	return v.Cell.DualVal()
}

// Tetra is the ordered 4-tuple (volume dual, face dual, edge dual,
// corner).
type Tetra [4]Vert

// ForEach streams every tetrahedron of coll's simplicial complex to fn,
// walking volume leaves, then their bordering face leaves (at or below
// the projected coordinate), then those faces' bordering edge leaves
// (likewise at or below), emitting two tetrahedra per edge leaf found.
func ForEach(coll *celltree.Collections, fn func(Tetra)) {
	coll.Volume.ForEach(func(cv pcoord.Coord, vcell *celltree.Cell) {
		vVert := Vert{Kind: VertVolume, Space: subspace.R3Space{}, Coord: cv, Cell: vcell}

		for _, sf := range subspace.FacesOf(cv) {
			faceTree, ok := coll.Faces[sf]
			if !ok {
				continue
			}
			anchor := sf.ProjectCoord(cv)
			for _, faceEntry := range faceTree.LeavesUnder(anchor) {
				fVert := Vert{Kind: VertFace, Space: sf, Coord: faceEntry.Coord, Cell: faceEntry.Value}
				emitFace(coll, sf, faceEntry.Coord, vVert, fVert, fn)
			}
		}
	})
}

func emitFace(coll *celltree.Collections, sf subspace.R2Space, faceCoord pcoord.Coord, vVert, fVert Vert, fn func(Tetra)) {
	for _, fe := range sf.Edges(faceCoord) {
		edgeTree, ok := coll.Edges[fe.Space]
		if !ok {
			continue
		}
		for _, edgeEntry := range edgeTree.LeavesUnder(fe.Coord) {
			eVert := Vert{Kind: VertEdge, Space: fe.Space, Coord: edgeEntry.Coord, Cell: edgeEntry.Value}

			lowCorner := Vert{Kind: VertCorner, Coord: fe.Space.UnprojectCoord(edgeEntry.Coord.LowParents())}
			highCorner := Vert{Kind: VertCorner, Coord: fe.Space.UnprojectCoord(edgeEntry.Coord.HighParents())}

			fn(Tetra{vVert, fVert, eVert, lowCorner})
			fn(Tetra{vVert, fVert, eVert, highCorner})
		}
	}
}
