// Package span implements the lane-span algebra that the rest of the
// compiler is built on: canonical sorted sets of qubit lane indices, the
// union/intersection/exclude operators over them, and the SliceRegister
// that tracks, per lane, the most recently emitted producer.
//
// A Span is "sparse" when it is exactly the set of lanes something
// touches, and "filled" when it is the closed interval between the
// minimum and maximum of that set — see Filled. Every other package in
// this module treats Span as a value type: copy it freely, never mutate
// one in place.
package span
