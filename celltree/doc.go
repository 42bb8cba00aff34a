// Package celltree builds the three PartitionTree collections the rest of
// the pipeline operates on: the volume octree (built directly from the
// scalar field's sign changes) and the derived face quadtrees / edge
// binary trees, one per distinct slab actually touched by a volume leaf.
//
// Cell is the mutable record every tree leaf holds: dualPos is written
// once by the dual solver, dualVal is filled lazily by marching
// tetrahedra. Both trees and maps here are built single-threaded; only
// the dual solve phase that follows touches cells concurrently, and then
// only to write each leaf's DualPos exactly once — the gridgraph-style
// "build the whole structure up front, then fan out read/write passes
// over it" layering this package follows.
package celltree
