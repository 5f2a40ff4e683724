package wordlist

import (
	"fmt"
	"sync"
)

// MemoryStore keeps lists in memory only
type MemoryStore struct {
	mu    sync.RWMutex
	lists map[string][]string
}

// NewMemoryStore creates a store seeded with the given lists.
// Lists not present start empty.
func NewMemoryStore(seed map[string][]string) *MemoryStore {
	lists := make(map[string][]string, len(Names))
	for _, name := range Names {
		lists[name] = nil
	}
	for name, words := range seed {
		cp := make([]string, 0, len(words))
		for _, w := range words {
			cp = append(cp, normalise(w))
		}
		lists[name] = cp
	}
	return &MemoryStore{lists: lists}
}

// NewDefaultStore returns a memory store holding the built-in lists
func NewDefaultStore() (*MemoryStore, error) {
	seed, err := Defaults()
	if err != nil {
		return nil, err
	}
	return NewMemoryStore(seed), nil
}

func (s *MemoryStore) Get(name string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lists[name]
}

func (s *MemoryStore) Append(name, word string) error {
	if !Known(name) {
		return fmt.Errorf("%w: %s", ErrUnknownList, name)
	}
	if !Appendable(name) {
		return fmt.Errorf("%w: %s", ErrReadOnlyList, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy so slices handed out by Get stay unchanged
	old := s.lists[name]
	updated := make([]string, len(old), len(old)+1)
	copy(updated, old)
	s.lists[name] = append(updated, normalise(word))
	return nil
}
