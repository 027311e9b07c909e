package service

import (
	"sync"
	"time"

	"github.com/katalvlaran/potfield/field"
	"github.com/katalvlaran/potfield/internal/telemetry"
)

// Session is one generated field and how it was made. Grid is never mutated
// after the session is stored, so handlers read it without holding the store lock.
type Session struct {
	ID         string
	Grid       *field.Grid
	Complexity int
	Seed       uint64 // 0 when unseeded
	Stats      field.Stats
	CreatedAt  time.Time
}

// Store is a bounded in-memory map of sessions with oldest-first eviction.
// Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	max   int
	order []string
	items map[string]*Session
}

// NewStore returns a Store holding at most max sessions (max >= 1).
func NewStore(max int) *Store {
	if max < 1 {
		max = 1
	}
	return &Store{max: max, items: make(map[string]*Session, max)}
}

// Put stores s and returns the IDs evicted to make room.
func (st *Store) Put(s *Session) []string {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.items[s.ID]; !ok {
		st.order = append(st.order, s.ID)
	}
	st.items[s.ID] = s

	var evicted []string
	for len(st.order) > st.max {
		id := st.order[0]
		st.order = st.order[1:]
		delete(st.items, id)
		evicted = append(evicted, id)
	}
	telemetry.SetFieldsStored(len(st.items))

	return evicted
}

// Get returns the session for id.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.items[id]
	return s, ok
}

// Delete removes id and reports whether it existed.
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.items[id]; !ok {
		return false
	}
	delete(st.items, id)
	for i, v := range st.order {
		if v == id {
			st.order = append(st.order[:i], st.order[i+1:]...)
			break
		}
	}
	telemetry.SetFieldsStored(len(st.items))

	return true
}

// Len returns the number of stored sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.items)
}
