package countries

import (
	"sync"
	"time"

	"github.com/joefazee/countrysearch/models"
)

// LoadResult is the outcome of the single load attempt.
type LoadResult struct {
	Countries []models.Country
	FromCache bool
	Err       error
}

// Failed reports whether the load attempt failed.
func (r LoadResult) Failed() bool {
	return r.Err != nil
}

// Snapshot is a consistent copy of State.
type Snapshot struct {
	All      []models.Country
	Loading  bool
	Failed   bool
	LoadedAt time.Time
}

// Visible derives the filtered list for query.
func (s Snapshot) Visible(query string) []models.Country {
	return Filter(s.All, query)
}

// State holds the loaded list for the lifetime of the process. It starts in
// the loading state and leaves it exactly once, when a LoadResult is applied.
type State struct {
	mu       sync.RWMutex
	all      []models.Country
	loading  bool
	failed   bool
	loadedAt time.Time
	now      func() time.Time
}

func NewState() *State {
	return &State{loading: true, now: time.Now}
}

// Apply records the load outcome. A failed load leaves the list empty.
// It returns false if a result was already applied.
func (s *State) Apply(r LoadResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loading {
		return false
	}
	s.loading = false
	s.loadedAt = s.now()
	if r.Failed() {
		s.failed = true
		s.all = []models.Country{}
		return true
	}
	s.all = r.Countries
	if s.all == nil {
		s.all = []models.Country{}
	}
	return true
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		All:      s.all,
		Loading:  s.loading,
		Failed:   s.failed,
		LoadedAt: s.loadedAt,
	}
}
