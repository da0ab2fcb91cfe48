package uaengine

import (
	"container/list"
	"sync"

	"github.com/dmitrymomot/uakit/pkg/useragent"
)

type storeEntry struct {
	key   string
	value *useragent.UserAgent
}

// resultStore maps raw UA strings to their classified results. With zero
// capacity it is an unbounded identity map: one entry per unique raw
// string for the life of the process, matching the facade's cache
// contract. A positive capacity turns on LRU eviction for long-running
// servers that see unbounded header variety.
type resultStore struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	eviction *list.List
}

func newResultStore(capacity int) *resultStore {
	return &resultStore{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

func (s *resultStore) get(key string) (*useragent.UserAgent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[key]
	if !ok {
		return nil, false
	}
	if s.capacity > 0 {
		s.eviction.MoveToFront(elem)
	}
	return elem.Value.(*storeEntry).value, true
}

// getOrPut inserts value unless the key is already present, and returns
// the stored pointer either way. Concurrent misses on the same raw string
// therefore still converge on a single shared result.
func (s *resultStore) getOrPut(key string, value *useragent.UserAgent) *useragent.UserAgent {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[key]; ok {
		if s.capacity > 0 {
			s.eviction.MoveToFront(elem)
		}
		return elem.Value.(*storeEntry).value
	}

	elem := s.eviction.PushFront(&storeEntry{key: key, value: value})
	s.items[key] = elem

	if s.capacity > 0 && s.eviction.Len() > s.capacity {
		oldest := s.eviction.Back()
		if oldest != nil {
			s.eviction.Remove(oldest)
			delete(s.items, oldest.Value.(*storeEntry).key)
		}
	}
	return value
}

func (s *resultStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eviction.Len()
}

func (s *resultStore) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*list.Element)
	s.eviction.Init()
}
