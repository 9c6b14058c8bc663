package span

// binding pairs a stored span with the value (typically a tensor-node id)
// most recently written to it. SliceRegister keeps its bindings sorted by
// Start so Apply/Get can walk them in a single pass, the same way
// lvlath's interval-bookkeeping helpers keep ranges ordered rather than
// rescanning an unordered set on every call.
type binding[V any] struct {
	span  Span
	value V
}

// SliceRegister is a tape over a lane space, labelled with the most
// recent writer for each lane. Stored spans are always pairwise
// disjoint; Apply splits any stored span that straddles the boundary of
// the span being written.
type SliceRegister[V any] struct {
	bindings []binding[V]
}

// NewSliceRegister returns an empty register.
func NewSliceRegister[V any]() *SliceRegister[V] {
	return &SliceRegister[V]{}
}

// Apply labels every lane in s.Filled() with value, splitting any
// existing binding that only partially overlaps s. Apply is idempotent:
// calling it twice with the same (s, value) leaves the register in the
// same state as calling it once.
func (r *SliceRegister[V]) Apply(s Span, value V) {
	if s.Empty() {
		return
	}
	filled := s.Filled()
	start, end := filled.Start(), filled.End()

	next := make([]binding[V], 0, len(r.bindings)+1)
	inserted := false
	for _, b := range r.bindings {
		bStart, bEnd := b.span.Start(), b.span.End()
		switch {
		case bEnd < start || bStart > end:
			// No overlap: keep as-is, but insert the new binding in
			// sorted position the first time we pass it.
			if !inserted && bStart > end {
				next = append(next, binding[V]{span: filled, value: value})
				inserted = true
			}
			next = append(next, b)
		default:
			// Overlap: keep only the parts of b strictly outside
			// [start, end].
			if bStart < start {
				next = append(next, binding[V]{span: rangeSpan(bStart, start-1), value: b.value})
			}
			if !inserted {
				next = append(next, binding[V]{span: filled, value: value})
				inserted = true
			}
			if bEnd > end {
				next = append(next, binding[V]{span: rangeSpan(end+1, bEnd), value: b.value})
			}
		}
	}
	if !inserted {
		next = append(next, binding[V]{span: filled, value: value})
	}
	r.bindings = next
}

// Pair is a (stored sub-span, value) result from Get.
type Pair[V any] struct {
	Span  Span
	Value V
}

// Get returns every stored (sub-span, value) pair whose positions
// intersect s.Filled(). After Apply(s, v), Get(s) returns exactly one
// pair: (s.Filled(), v).
func (r *SliceRegister[V]) Get(s Span) []Pair[V] {
	if s.Empty() {
		return nil
	}
	filled := s.Filled()
	start, end := filled.Start(), filled.End()

	var out []Pair[V]
	for _, b := range r.bindings {
		bStart, bEnd := b.span.Start(), b.span.End()
		if bEnd < start || bStart > end {
			continue
		}
		lo, hi := maxInt(bStart, start), minInt(bEnd, end)
		out = append(out, Pair[V]{Span: rangeSpan(lo, hi), Value: b.value})
	}
	return out
}

func rangeSpan(lo, hi int) Span {
	out := make(Span, 0, hi-lo+1)
	for l := lo; l <= hi; l++ {
		out = append(out, l)
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
