package isogrid

import (
	"github.com/katalvlaran/isogrid/celltree"
	"github.com/katalvlaran/isogrid/dual"
	"github.com/katalvlaran/isogrid/evalcache"
	"github.com/katalvlaran/isogrid/march"
	"github.com/katalvlaran/isogrid/volume"
	"golang.org/x/sync/errgroup"
)

// MeshBuffers is the final output of FindIsosurface: world-space
// vertices and a flat triangle-index buffer, taken in triples.
type MeshBuffers = march.MeshBuffers

// dualBatchSize is the fixed batch size used to fan dual solves out
// across the worker pool.
const dualBatchSize = 1000

// FindIsosurface runs the full extraction pipeline: build the cell-tree
// collections, solve every cell's dual vertex, then tetrahedralize and
// run marching tetrahedra.
func FindIsosurface(fn volume.VolumetricFunc, vol volume.SDFVolume, settings SolverSettings) (MeshBuffers, error) {
	if err := settings.Validate(); err != nil {
		return MeshBuffers{}, err
	}

	log := settings.logger
	cache := evalcache.New(fn, vol)

	log.Debug().Int("min_depth", settings.minOctreeDepth).Int("max_depth", settings.maxOctreeDepth).
		Msg("building cell-tree collections")
	coll, err := celltree.Build(cache, settings.minOctreeDepth, settings.maxOctreeDepth)
	if err != nil {
		return MeshBuffers{}, err
	}

	jobs := dual.CollectJobs(coll)
	log.Debug().Int("cells", len(jobs)).Int("worker_threads", settings.workerThreads).Msg("solving cell duals")
	if err := solveDuals(cache, jobs, settings.workerThreads); err != nil {
		return MeshBuffers{}, err
	}

	log.Debug().Msg("tetrahedralizing and marching")
	mesh := march.Run(cache, coll)
	log.Debug().Int("verts", len(mesh.Verts)).Int("indices", len(mesh.Indices)).Msg("isosurface extraction complete")

	return mesh, nil
}

// solveDuals runs every job inline when workerThreads is 0 (synchronous
// on the caller, the default); otherwise it fans batches of
// dualBatchSize jobs out across a bounded errgroup pool, each goroutine
// solving against its own evalcache.Cache clone so no lock is needed.
func solveDuals(cache *evalcache.Cache, jobs []dual.Job, workerThreads int) error {
	if workerThreads <= 0 {
		for _, j := range jobs {
			j.Solve(cache)
		}

		return nil
	}

	g := new(errgroup.Group)
	g.SetLimit(workerThreads)
	for _, batch := range batchJobs(jobs, dualBatchSize) {
		batch := batch
		g.Go(func() error {
			workerCache := cache.Clone()
			for _, j := range batch {
				j.Solve(workerCache)
			}

			return nil
		})
	}

	return g.Wait()
}

// batchJobs splits jobs into consecutive chunks of at most size entries.
func batchJobs(jobs []dual.Job, size int) [][]dual.Job {
	var batches [][]dual.Job
	for size < len(jobs) {
		jobs, batches = jobs[size:], append(batches, jobs[0:size:size])
	}
	if len(jobs) > 0 {
		batches = append(batches, jobs)
	}

	return batches
}
