package envtree

import "errors"

// ErrMalformedPath is returned when a key decodes to a single segment that
// is purely numeric: a lone top-level variable can only become an object
// field, never a root-level array slot.
var ErrMalformedPath = errors.New("first key part cannot be a number")

// ErrShapeConflict is returned when a path expects one container kind but
// the tree already holds another at that position, for example an array
// index addressed into an existing object.
var ErrShapeConflict = errors.New("shape conflict")

// ErrInvalidScalar is returned when a value looks numeric but has no valid
// numeric representation, such as NaN or an infinity.
var ErrInvalidScalar = errors.New("invalid scalar value")

// ErrPrefixMismatch reports an internal invariant violation: a key that
// passed the prefix filter does not actually start with the prefix. It
// should be unreachable.
var ErrPrefixMismatch = errors.New("key does not match prefix")
