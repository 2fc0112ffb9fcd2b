package countries

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/countrysearch/models"
)

func fixedState(at time.Time) *State {
	s := NewState()
	s.now = func() time.Time { return at }
	return s
}

func TestState_StartsLoading(t *testing.T) {
	snap := NewState().Snapshot()

	assert.True(t, snap.Loading)
	assert.False(t, snap.Failed)
	assert.Empty(t, snap.All)
	assert.True(t, snap.LoadedAt.IsZero())
}

func TestState_ApplySuccess(t *testing.T) {
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s := fixedState(at)
	list := sampleCountries()

	require.True(t, s.Apply(LoadResult{Countries: list}))

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.False(t, snap.Failed)
	assert.Equal(t, list, snap.All)
	assert.Equal(t, at, snap.LoadedAt)
}

func TestState_ApplyNilListIsEmpty(t *testing.T) {
	s := NewState()
	require.True(t, s.Apply(LoadResult{}))

	snap := s.Snapshot()
	assert.NotNil(t, snap.All)
	assert.Empty(t, snap.All)
}

func TestState_ApplyFailureClearsList(t *testing.T) {
	s := NewState()
	result := LoadResult{Countries: sampleCountries(), Err: errors.New("boom")}
	require.True(t, result.Failed())

	require.True(t, s.Apply(result))

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.True(t, snap.Failed)
	assert.Empty(t, snap.All)
}

func TestState_ApplyOnlyOnce(t *testing.T) {
	s := NewState()
	first := []models.Country{{Name: "France"}}

	require.True(t, s.Apply(LoadResult{Countries: first}))
	assert.False(t, s.Apply(LoadResult{Countries: sampleCountries()}))
	assert.False(t, s.Apply(LoadResult{Err: errors.New("late failure")}))

	snap := s.Snapshot()
	assert.Equal(t, first, snap.All)
	assert.False(t, snap.Failed)
}

func TestState_ConcurrentApply(t *testing.T) {
	s := NewState()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok := s.Apply(LoadResult{Countries: sampleCountries()})
			_ = s.Snapshot().Visible("ger")
			if ok {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, applied)
	assert.False(t, s.Snapshot().Loading)
}

func TestSnapshot_Visible(t *testing.T) {
	snap := Snapshot{All: sampleCountries()}

	assert.Equal(t, []string{"Germany", "Niger", "Nigeria"}, names(snap.Visible("GER")))
	assert.Len(t, snap.Visible("   "), len(snap.All))
}
