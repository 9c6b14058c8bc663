package schedule

import "sort"

// Plan is a set of instructions plus the waiting/dependants bookkeeping
// spec.md §3 describes. Plan's mutation methods are not reentrant
// (spec.md §5): a driver must serialise its own FetchReady/SetDone
// calls, matching how lvlath's flow.Dinic owns its level-graph state
// without an internal lock.
type Plan struct {
	instructions map[int]*Instruction
	waiting      map[int]map[int]struct{}
	dependants   map[int]map[int]struct{}
}

// FetchReady returns every instruction whose waiting set is currently
// empty, sorted by id for deterministic batches. It does not remove
// them from the plan.
func (p *Plan) FetchReady() []*Instruction {
	ready := make([]*Instruction, 0)
	for id, w := range p.waiting {
		if len(w) == 0 {
			ready = append(ready, p.instructions[id])
		}
	}
	sort.Slice(ready, func(i, j int) bool { return ready[i].ID < ready[j].ID })
	return ready
}

// SetDone marks every id in ids complete: it is removed from the plan
// and from every dependant's waiting set. SetDone panics with
// ErrNotReady if any id still has unmet dependencies — spec.md §7
// classes this as an internal invariant violation, not a recoverable
// error.
func (p *Plan) SetDone(ids []int) {
	for _, id := range ids {
		if w, ok := p.waiting[id]; !ok || len(w) != 0 {
			panic(ErrNotReady)
		}
	}
	for _, id := range ids {
		for dep := range p.dependants[id] {
			delete(p.waiting[dep], id)
		}
		delete(p.instructions, id)
		delete(p.waiting, id)
		delete(p.dependants, id)
	}
}

// IsEmpty reports whether every instruction has been marked done.
func (p *Plan) IsEmpty() bool { return len(p.instructions) == 0 }

// Len returns the number of instructions remaining in the plan.
func (p *Plan) Len() int { return len(p.instructions) }

// Instruction returns the instruction stored under id, if it is still
// in the plan.
func (p *Plan) Instruction(id int) (*Instruction, bool) {
	instr, ok := p.instructions[id]
	return instr, ok
}
