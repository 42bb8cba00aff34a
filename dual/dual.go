package dual

import (
	"github.com/katalvlaran/isogrid/celltree"
	"github.com/katalvlaran/isogrid/evalcache"
	"github.com/katalvlaran/isogrid/linalg"
	"github.com/katalvlaran/isogrid/pcoord"
	"github.com/katalvlaran/isogrid/ptree"
	"github.com/katalvlaran/isogrid/subspace"
)

// Job is one cell awaiting a dual solve: its coordinate, the subspace it
// lives in, and the Cell record to write the result into. Jobs from every
// collection (volume, face, edge) are interchangeable once collected,
// letting the orchestration layer batch them without caring which tree
// they came from.
type Job struct {
	Coord pcoord.Coord
	Space subspace.Space
	Cell  *celltree.Cell
}

// Solve writes job.Cell.DualPos in place, using cache to evaluate the
// field and its gradient at job.Coord's corners.
func (j Job) Solve(cache *evalcache.Cache) {
	Solve(cache, j.Space, j.Coord, j.Cell)
}

// CollectJobs gathers every cell in coll into a flat job list: the
// volume tree's leaves under R3Space{}, each face tree's leaves under its
// own R2Space key, each edge tree's leaves under its own R1Space key.
func CollectJobs(coll *celltree.Collections) []Job {
	var jobs []Job

	coll.Volume.ForEach(func(coord pcoord.Coord, cell *celltree.Cell) {
		jobs = append(jobs, Job{Coord: coord, Space: subspace.R3Space{}, Cell: cell})
	})
	for space, tree := range coll.Faces {
		appendJobs(&jobs, tree, space)
	}
	for space, tree := range coll.Edges {
		appendJobs(&jobs, tree, space)
	}

	return jobs
}

func appendJobs(jobs *[]Job, tree *ptree.Tree[*celltree.Cell], space subspace.Space) {
	tree.ForEach(func(coord pcoord.Coord, cell *celltree.Cell) {
		*jobs = append(*jobs, Job{Coord: coord, Space: space, Cell: cell})
	})
}

// Solve computes the quadric-minimizing dual vertex for the cell at coord
// in space and writes it into cell.DualPos, normalized within space's own
// frame. Falls back to the cell center (coord.NormPos()) when the
// pseudo-inverse fails to form or places the dual outside the cell.
func Solve(cache *evalcache.Cache, space subspace.Space, coord pcoord.Coord, cell *celltree.Cell) {
	n := len(space.FreeDims())
	acc := linalg.NewAccumulator(n)

	for _, vertex := range coord.VertexCoords() {
		full := space.UnprojectCoord(vertex)
		p := cache.RealPos(full)
		g := cache.EvalGrad(full)
		val := cache.Eval(full)

		d := val - (g.X*p.X + g.Y*p.Y + g.Z*p.Z)

		gs := space.ProjectVec(g)
		v := make([]float64, n+1)
		copy(v, gs)
		v[n] = d
		acc.Add(v)
	}

	center := coord.NormPos()
	solved, ok := acc.Solve()
	if !ok {
		copy(cell.DualPos, center)

		return
	}

	normPos := cache.NormPosIn(solved, space.FreeDims())
	if !insideCell(coord, normPos) {
		copy(cell.DualPos, center)

		return
	}

	copy(cell.DualPos, normPos)
}

// insideCell reports whether normPos (one component per free dimension of
// space) lies within coord's closed normalized interval — the acceptance
// test for a solved dual vertex.
func insideCell(coord pcoord.Coord, normPos []float64) bool {
	lo := coord.LowParents().NormPos()
	hi := coord.HighParents().NormPos()
	for i, p := range normPos {
		if p < lo[i] || p > hi[i] {
			return false
		}
	}

	return true
}
