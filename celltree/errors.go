package celltree

import "errors"

// ErrMaxDepthExceeded indicates max_octree_depth exceeds the 62-level
// ceiling partid.ID's fixed-point encoding can represent.
var ErrMaxDepthExceeded = errors.New("celltree: max octree depth exceeds limit")

// ErrMinExceedsMax indicates min_octree_depth is deeper than
// max_octree_depth.
var ErrMinExceedsMax = errors.New("celltree: min octree depth exceeds max octree depth")
