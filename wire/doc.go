// Package wire implements the binary instruction format of spec.md §6:
// one little-endian record per instruction, inline blocks serialised as
// sparse COO above a 1e-10 magnitude threshold. Emit drains a Plan
// exactly like exec.Run's generic driver loop, but instead of computing
// a kernel it streams each instruction's serialised form — the binary
// emitter's save_block is a no-op, per spec.md §4.6.
package wire
