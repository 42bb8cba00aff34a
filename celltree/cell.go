package celltree

// Cell is the per-leaf record every tree node holds: dualPos is the
// in-cell dual vertex in the box's normalized coordinates along the free
// dimensions of the cell's subspace (length == the subspace dimension);
// dualVal memoizes f at that dual's unprojected real position, filled
// lazily during marching tetrahedra.
type Cell struct {
	DualPos []float64
	dualVal *float64
}

// NewCell returns a default-constructed Cell for a subspace of dimension
// dim: DualPos starts at the all-0.5 point (the center of the box, not of
// the cell); the dual solver overwrites it with the solved dual or, on
// fallback, with the cell's own center.
func NewCell(dim int) *Cell {
	pos := make([]float64, dim)
	for i := range pos {
		pos[i] = 0.5
	}

	return &Cell{DualPos: pos}
}

// HasDualVal reports whether the dual's cached field value has been set.
func (c *Cell) HasDualVal() bool {
	return c.dualVal != nil
}

// DualVal returns the cached field value at the dual vertex. Callers must
// check HasDualVal first.
func (c *Cell) DualVal() float64 {
	return *c.dualVal
}

// SetDualVal fills dualVal once. Called from a single thread during
// marching tetrahedra; a second call simply overwrites (no concurrent
// writer ever exists by construction).
func (c *Cell) SetDualVal(v float64) {
	if c.dualVal == nil {
		c.dualVal = new(float64)
	}
	*c.dualVal = v
}
