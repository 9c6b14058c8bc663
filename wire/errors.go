package wire

import "errors"

// ErrTruncated is returned when the input ends partway through a
// record: a spec.md §7 I/O error, surfaced verbatim to the driver
// rather than retried.
var ErrTruncated = errors.New("wire: truncated record")
