// Package volume defines the affine map between the normalized [0,1]^3 box
// and world coordinates (SDFVolume), and the VolumetricFunc capability pair
// the caller supplies to evaluate the implicit field and its gradient.
//
// SDFVolume has no defaults: callers construct it as a plain struct literal
// (it has only two fields, Base and Size), so no functional-options layer is
// warranted here — that idiom is reserved in this module for SolverSettings,
// which has several independently-defaulted knobs.
package volume
