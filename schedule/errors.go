package schedule

import "errors"

// ErrNotReady is the internal invariant spec.md §7 describes as a
// fail-fast assertion: SetDone was called on an instruction that still
// has unmet dependencies. It indicates a driver bug, not recoverable
// user input, and SetDone panics with it rather than returning it.
var ErrNotReady = errors.New("schedule: set_done on instruction with unmet dependencies")
