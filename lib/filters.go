package lib

import "sync"

// DefaultLimit is the feed page size used when no limit filter is set.
const DefaultLimit = 25

// Filters are the active feed query filters. Username filtering happens
// client-side after the fetch; only Limit is sent to the server.
type Filters struct {
	Username string
	Limit    int
}

// FilterStore holds the active filters. Mutated only by explicit filter
// submission.
type FilterStore struct {
	mu      sync.Mutex
	filters Filters
}

func NewFilterStore() *FilterStore {
	return &FilterStore{
		filters: Filters{Limit: DefaultLimit},
	}
}

func (s *FilterStore) Get() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// Set stores new filter values, falling back to defaults for zero values.
func (s *FilterStore) Set(username string, limit int) Filters {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = DefaultLimit
	}
	s.filters = Filters{Username: username, Limit: limit}
	return s.filters
}
