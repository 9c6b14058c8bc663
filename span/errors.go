package span

import "errors"

// ErrNotAscending is returned by validation helpers when a caller-supplied
// slice of lane indices is not strictly ascending.
var ErrNotAscending = errors.New("span: lanes must be strictly ascending")

// ErrNegativeLane is returned when a lane index is negative.
var ErrNegativeLane = errors.New("span: lane index must be non-negative")
