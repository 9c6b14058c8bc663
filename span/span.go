package span

// Span is a canonical sorted set of distinct, non-negative lane indices.
// The zero value is the empty span. Callers must treat a Span as
// immutable; every operation here returns a freshly allocated slice.
type Span []int

// New validates and returns lanes as a Span. lanes must already be
// strictly ascending and non-negative; New does not sort or dedupe, it
// only checks the invariant, mirroring how lvlath's adjacency helpers
// validate rather than silently repair caller input.
func New(lanes ...int) (Span, error) {
	for i, l := range lanes {
		if l < 0 {
			return nil, ErrNegativeLane
		}
		if i > 0 && lanes[i-1] >= l {
			return nil, ErrNotAscending
		}
	}
	if len(lanes) == 0 {
		return nil, nil
	}
	out := make(Span, len(lanes))
	copy(out, lanes)
	return out, nil
}

// Len returns the cardinality of s (the sparse count of lanes).
func (s Span) Len() int { return len(s) }

// Empty reports whether s has no lanes.
func (s Span) Empty() bool { return len(s) == 0 }

// Start returns the minimum lane in s. Start panics on an empty span;
// callers must check Empty first, exactly as lvlath's graph algorithms
// assume a non-empty frontier before indexing into it.
func (s Span) Start() int {
	invariant(len(s) > 0, "span: Start of empty span")
	return s[0]
}

// End returns the maximum lane in s.
func (s Span) End() int {
	invariant(len(s) > 0, "span: End of empty span")
	return s[len(s)-1]
}

// Filled returns the closed integer interval [Start(s), End(s)] as a
// Span. Filled(Filled(s)) == Filled(s) for any non-empty s.
func (s Span) Filled() Span {
	if len(s) == 0 {
		return nil
	}
	start, end := s.Start(), s.End()
	out := make(Span, 0, end-start+1)
	for l := start; l <= end; l++ {
		out = append(out, l)
	}
	return out
}

// Contains reports whether lane is present in s.
func (s Span) Contains(lane int) bool {
	// s is small in practice (gate rank is at most a handful of lanes
	// before filling); a linear scan keeps Contains allocation-free and
	// dependency-free, walking the sorted lanes as the merge-based
	// operations below do.
	for _, l := range s {
		if l == lane {
			return true
		}
		if l > lane {
			return false
		}
	}
	return false
}

// Equal reports whether a and b contain exactly the same lanes in the
// same order (both are canonical, so this is a plain slice comparison).
func Equal(a, b Span) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Union returns the sorted merge of a and b without duplicates, in
// O(len(a)+len(b)).
func Union(a, b Span) Span {
	out := make(Span, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Intersection returns the sorted set of lanes present in both a and b.
// The result may be empty.
func Intersection(a, b Span) Span {
	out := make(Span, 0, minInt(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// Exclude returns the lanes of a that are not in b. The result may be
// empty.
func Exclude(a, b Span) Span {
	out := make(Span, 0, len(a))
	i, j := 0, 0
	for i < len(a) {
		for j < len(b) && b[j] < a[i] {
			j++
		}
		if j < len(b) && b[j] == a[i] {
			i++
			continue
		}
		out = append(out, a[i])
		i++
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// invariant panics with msg when cond is false. Reserved for conditions
// that indicate a programmer error rather than bad user input — see
// spec §7's "internal invariant violation" class.
func invariant(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}
