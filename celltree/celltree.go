package celltree

import (
	"fmt"

	"github.com/katalvlaran/isogrid/evalcache"
	"github.com/katalvlaran/isogrid/partid"
	"github.com/katalvlaran/isogrid/pcoord"
	"github.com/katalvlaran/isogrid/ptree"
	"github.com/katalvlaran/isogrid/subspace"
)

// Collections holds the three derived partition-tree collections: the
// single volume octree, one quadtree per face slab actually touched by a
// volume leaf, and one binary tree per edge slab pair likewise touched.
type Collections struct {
	Volume *ptree.Tree[*Cell]
	Faces  map[subspace.R2Space]*ptree.Tree[*Cell]
	Edges  map[subspace.R1Space]*ptree.Tree[*Cell]
}

func rootCoord3() pcoord.Coord {
	return pcoord.Coord{partid.RootID, partid.RootID, partid.RootID}
}

// Build grows the volume octree from the root by sign-change recursion
// between minDepth and maxDepth, prunes it, then derives the face and
// edge collections from its surviving leaves.
func Build(cache *evalcache.Cache, minDepth, maxDepth int) (*Collections, error) {
	if maxDepth > 62 {
		return nil, fmt.Errorf("%w: max_octree_depth %d exceeds 62", ErrMaxDepthExceeded, maxDepth)
	}
	if minDepth > maxDepth {
		return nil, fmt.Errorf("%w: min_octree_depth %d exceeds max_octree_depth %d", ErrMinExceedsMax, minDepth, maxDepth)
	}

	volume := ptree.New[*Cell](3)
	buildVolume(cache, volume, rootCoord3(), 0, minDepth, maxDepth)
	volume.Prune()

	faces := make(map[subspace.R2Space]*ptree.Tree[*Cell])
	edges := make(map[subspace.R1Space]*ptree.Tree[*Cell])
	volume.ForEach(func(coord pcoord.Coord, _ *Cell) {
		deriveFaces(coord, faces)
		deriveEdges(coord, edges)
	})

	return &Collections{Volume: volume, Faces: faces, Edges: edges}, nil
}

func buildVolume(cache *evalcache.Cache, tree *ptree.Tree[*Cell], coord pcoord.Coord, depth, minDepth, maxDepth int) {
	if depth < minDepth {
		for _, child := range coord.ChildCoords() {
			buildVolume(cache, tree, child, depth+1, minDepth, maxDepth)
		}

		return
	}

	if !signChange(cache, coord) {
		return
	}

	if depth == maxDepth {
		tree.InsertLeaf(coord, NewCell(3))

		return
	}

	for _, child := range coord.ChildCoords() {
		buildVolume(cache, tree, child, depth+1, minDepth, maxDepth)
	}
}

// signChange reports whether coord's 8 corner samples are not all on the
// same side of 0 (strict >0 vs. everything else).
func signChange(cache *evalcache.Cache, coord pcoord.Coord) bool {
	corners := coord.VertexCoords()
	first := cache.Eval(corners[0]) > 0
	for _, c := range corners[1:] {
		if (cache.Eval(c) > 0) != first {
			return true
		}
	}

	return false
}

func deriveFaces(leaf pcoord.Coord, faces map[subspace.R2Space]*ptree.Tree[*Cell]) {
	for _, s := range subspace.FacesOf(leaf) {
		tree, ok := faces[s]
		if !ok {
			tree = ptree.New[*Cell](2)
			faces[s] = tree
		}
		tree.InsertLeaf(s.ProjectCoord(leaf), NewCell(2))
	}
}

func deriveEdges(leaf pcoord.Coord, edges map[subspace.R1Space]*ptree.Tree[*Cell]) {
	for _, s := range subspace.EdgesOf(leaf) {
		tree, ok := edges[s]
		if !ok {
			tree = ptree.New[*Cell](1)
			edges[s] = tree
		}
		tree.InsertLeaf(s.ProjectCoord(leaf), NewCell(1))
	}
}
