package isogrid

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// maxOctreeDepth is the hard ceiling on max_octree_depth: PartitionID
// reserves bit 62 for the root and has no room for a deeper split.
const maxOctreeDepth = 62

// machineEpsilon is the default vert_fitting_error tolerance.
var machineEpsilon = math.Nextafter(1, 2) - 1

// SolverSettings configures FindIsosurface. The zero value is not valid;
// build one with NewSolverSettings, which applies documented defaults
// before any options.
type SolverSettings struct {
	workerThreads          int
	minOctreeDepth         int
	maxOctreeDepth         int
	dualSampleSubdivisions int
	maxVertFittingSteps    int
	vertFittingError       float64
	logger                 zerolog.Logger
}

// Option customizes a SolverSettings before it is validated.
type Option func(*SolverSettings)

// NewSolverSettings returns settings initialized to their defaults —
// worker_threads=0, min_octree_depth=3, max_octree_depth=4,
// dual_sample_subdivisions=1, max_vert_fitting_steps=32,
// vert_fitting_error=machine epsilon, a no-op logger — then applies opts
// in order; later options override earlier ones.
func NewSolverSettings(opts ...Option) SolverSettings {
	s := SolverSettings{
		workerThreads:          0,
		minOctreeDepth:         3,
		maxOctreeDepth:         4,
		dualSampleSubdivisions: 1,
		maxVertFittingSteps:    32,
		vertFittingError:       machineEpsilon,
		logger:                 zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// WithWorkerThreads sets the number of additional worker goroutines used
// to fan out dual solves; 0 (the default) solves synchronously on the
// caller.
func WithWorkerThreads(n int) Option {
	return func(s *SolverSettings) { s.workerThreads = n }
}

// WithMinOctreeDepth sets the depth below which the volume octree always
// subdivides regardless of sign change.
func WithMinOctreeDepth(d int) Option {
	return func(s *SolverSettings) { s.minOctreeDepth = d }
}

// WithMaxOctreeDepth sets the depth at which recursion stops; a sign
// change at this depth emits a leaf, otherwise the branch is empty.
func WithMaxOctreeDepth(d int) Option {
	return func(s *SolverSettings) { s.maxOctreeDepth = d }
}

// WithDualSampleSubdivisions sets the (currently reserved) corner
// oversampling factor; 0 is a documented no-op.
func WithDualSampleSubdivisions(n int) Option {
	return func(s *SolverSettings) { s.dualSampleSubdivisions = n }
}

// WithMaxVertFittingSteps sets the (currently reserved) iteration bound
// for an optional Newton refinement of edge-crossing roots.
func WithMaxVertFittingSteps(n int) Option {
	return func(s *SolverSettings) { s.maxVertFittingSteps = n }
}

// WithVertFittingError sets the (currently reserved) convergence
// tolerance for the Newton refinement named by WithMaxVertFittingSteps.
func WithVertFittingError(eps float64) Option {
	return func(s *SolverSettings) { s.vertFittingError = eps }
}

// WithLogger attaches a zerolog.Logger for phase-level progress logging.
// The default is zerolog.Nop(), which discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *SolverSettings) { s.logger = l }
}

// Validate checks the depth constraints FindIsosurface requires before
// any work begins: max_octree_depth must not exceed 62, and
// min_octree_depth must not exceed max_octree_depth.
func (s SolverSettings) Validate() error {
	if s.maxOctreeDepth > maxOctreeDepth {
		return fmt.Errorf("%w: max_octree_depth %d exceeds %d", ErrInvalidSettings, s.maxOctreeDepth, maxOctreeDepth)
	}
	if s.minOctreeDepth > s.maxOctreeDepth {
		return fmt.Errorf("%w: min_octree_depth %d exceeds max_octree_depth %d", ErrInvalidSettings, s.minOctreeDepth, s.maxOctreeDepth)
	}

	return nil
}
