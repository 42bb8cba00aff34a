// Package evalcache memoizes VolumetricFunc evaluations and gradients at
// PartitionCoord3 grid points. Lookups key on the coordinate's string form
// (pcoord.Coord.Key, a "%d,%d"-style convention for grid cells) rather
// than the coordinate value itself, since a Coord is a slice and
// therefore not map-key comparable.
//
// A Cache is single-writer but Clone gives each clone independent, empty
// backing maps — no state is shared between clones. This trades some
// duplicate evaluation for lock-free concurrent use: a central cache
// behind a lock would serialize the dual-solve hot path, so the
// orchestration layer instead gives each worker its own clone, narrowing
// the lock by avoiding it altogether.
package evalcache
