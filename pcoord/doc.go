// Package pcoord lifts partid's scalar ID algebra to N-tuples: points in
// [0,1]^N for N in {1,2,3}, used as cell coordinates in the volume octree,
// the face quadtrees, and the edge binary trees.
//
// A Coord is simply []partid.ID; its dimension is its length, not a type
// parameter — a slice is the idiomatic Go fit for a tuple whose arity
// varies by call site, the same instinct behind an adjacency list's
// per-node neighbor slices or a flat row-major matrix buffer.
//
// Coord is ordered lexicographically by component ID and is comparable by
// value only after conversion to a string key (see Coord.Key, used by
// the evalcache package as a map key and by tetra's vertex keys).
package pcoord
