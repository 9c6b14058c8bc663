package exec

import "sync"

// Store is a concurrency-safe id -> Block mapping. A sync.Map fits this
// shape better than a mutex-guarded map: writers (one per finished
// instruction) vastly outnumber the occasional full scan a Drain does,
// and keys are written at most once per id.
type Store struct {
	blocks sync.Map // int -> Block
}

// NewStore returns an empty Store.
func NewStore() *Store { return &Store{} }

// Save records b as the result for id. Save is safe to call
// concurrently from multiple goroutines executing independent
// instructions, satisfying the atomic-save-block contract spec.md §5
// requires of a multi-worker executor.
func (s *Store) Save(id int, b Block) { s.blocks.Store(id, b) }

// Load returns the block saved for id, if any.
func (s *Store) Load(id int) (Block, bool) {
	v, ok := s.blocks.Load(id)
	if !ok {
		return Block{}, false
	}
	return v.(Block), true
}

// Drain returns every block currently stored, keyed by id.
func (s *Store) Drain() map[int]Block {
	out := make(map[int]Block)
	s.blocks.Range(func(k, v any) bool {
		out[k.(int)] = v.(Block)
		return true
	})
	return out
}
