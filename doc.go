// Package isogrid extracts a triangle mesh approximating the zero-level
// set of a scalar field over an axis-aligned box: an adaptive octree is
// built from sign changes of the field, per-cell dual vertices are
// solved by quadric minimization, and marching tetrahedra emits a
// crack-free triangle mesh conforming to the adaptive grid.
//
// FindIsosurface is the single entry point; SolverSettings configures
// octree depth, worker concurrency, and the (currently reserved)
// dual-sample oversampling knob. See the partid, pcoord, ptree,
// subspace, volume, evalcache, celltree, dual, tetra, and march
// subpackages for the algorithm's individual stages.
package isogrid
