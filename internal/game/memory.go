package game

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo. It round-trips states through JSON
// so loads see the same encoding behavior as the durable store.
type MemoryRepo struct {
	mu      sync.Mutex
	entries map[string][]byte
}

// NewMemoryRepo creates an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{entries: make(map[string][]byte)}
}

func (r *MemoryRepo) Load(_ context.Context, dateKey string) (*State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, ok := r.entries[dateKey]
	if !ok {
		return nil, ErrNotFound
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *MemoryRepo) Save(_ context.Context, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[state.Date] = data
	return nil
}

func (r *MemoryRepo) List(_ context.Context) ([]*State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	states := make([]*State, 0, len(keys))
	for _, k := range keys {
		var state State
		if err := json.Unmarshal(r.entries[k], &state); err != nil {
			continue // skip unreadable entries, same as Load failing open
		}
		states = append(states, &state)
	}
	return states, nil
}

func (r *MemoryRepo) Delete(_ context.Context, dateKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, dateKey)
	return nil
}

func (r *MemoryRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string][]byte)
	return nil
}
