// Package exec implements the executor protocol of spec.md §4.6: a
// Backend resolves instruction operands to blocks and stores results,
// and Run drives a Plan to completion against any Backend. CPU is the
// in-memory backend. The binary emitter in package wire does not
// implement Backend: wire.Emit drives a Plan through the same
// fetch-ready/set-done loop and writes each instruction to a byte stream
// instead of computing it.
package exec
