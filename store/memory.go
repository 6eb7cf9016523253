package store

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/Eyob-T295/summit-connect/model"
)

// MemStore is an in-memory Store for tests and ephemeral deployments. It keeps
// the serialized form, so load/save round-trips behave exactly like the file
// adapter.
type MemStore struct {
	mu      sync.Mutex
	data    []byte // nil means the key is absent
	subs    map[int]func()
	nextSub int
}

func NewMemStore() *MemStore {
	return &MemStore{subs: make(map[int]func())}
}

func (s *MemStore) Load() []model.LeadRecord {
	s.mu.Lock()
	data := s.data
	s.mu.Unlock()

	if data == nil {
		return []model.LeadRecord{}
	}
	var leads []model.LeadRecord
	if err := json.Unmarshal(data, &leads); err != nil {
		slog.Warn("failed to parse in-memory lead store, treating as empty", "error", err)
		return []model.LeadRecord{}
	}
	if leads == nil {
		leads = []model.LeadRecord{}
	}
	return leads
}

func (s *MemStore) Save(leads []model.LeadRecord) {
	data, err := json.Marshal(leads)
	if err != nil {
		slog.Error("failed to serialize lead collection", "error", err)
		return
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
}

func (s *MemStore) Clear() {
	s.mu.Lock()
	s.data = nil
	s.mu.Unlock()
}

func (s *MemStore) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// SetRaw overwrites the stored bytes directly, simulating a write from another
// context.
func (s *MemStore) SetRaw(data []byte) {
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
}

// NotifyExternal fires all subscribers, simulating the storage-change event a
// foreign writer would trigger.
func (s *MemStore) NotifyExternal() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
