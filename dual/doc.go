// Package dual implements the per-cell quadric solve: each cell's dual
// vertex is the point minimizing the sum of squared distances
// to the tangent planes linearized from the scalar field at the cell's
// corners, found via a Moore-Penrose pseudo-inverse (linalg.Accumulator).
//
// Solve operates on one cell at a time and is safe to call concurrently
// across distinct cells, provided each caller holds its own
// evalcache.Cache clone — it never mutates shared state beyond the Cell
// pointer it was given, matching the at-most-once write-per-cell model
// the orchestration layer's worker pool relies on.
package dual
