// Package compiler glues the core subsystems into a single entry point:
// a circuit goes in, a tensor network is built and contracted into a
// forest of independent contractions, each non-trivial contraction is
// lowered and scheduled into its own Plan, and Execute drives every
// Plan to completion before composing the surviving per-contraction
// blocks into one operator over the circuit's full lane range.
//
// Every stage boundary is logged through zerolog, and each Compile call
// is tagged with a fresh run id so a caller correlating log output
// across network/contraction/plan events for one compile has a single
// field to filter on.
package compiler
