package subspace

import "fmt"

// KeyOf returns a string uniquely identifying a Space instance, used to
// key map dictionaries and to compare simplex vertex references, whose
// logical identity is the pair (subspace, coord).
func KeyOf(s Space) string {
	switch sp := s.(type) {
	case R3Space:
		return "R3"
	case R2Space:
		return fmt.Sprintf("R2:%d:%d", sp.Axis, sp.Slab)
	case R1Space:
		return fmt.Sprintf("R1:%d:%d:%d", sp.Axis, sp.Slab[0], sp.Slab[1])
	default:
		return fmt.Sprintf("?:%v", s)
	}
}
