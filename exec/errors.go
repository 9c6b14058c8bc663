package exec

import "errors"

// ErrMissingBlock is returned when an Address operand names an
// instruction id with no saved block — either a scheduling bug (an
// instruction dispatched before its dependency finished) or a dropped
// plan reused after cancellation.
var ErrMissingBlock = errors.New("exec: no block saved for address")
