package countries

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/joefazee/countrysearch/internal/cache"
	"github.com/joefazee/countrysearch/internal/logger"
	"github.com/joefazee/countrysearch/models"
)

// SnapshotKey is the cache key of the loaded country list.
const SnapshotKey = "countries:snapshot"

// Loader performs the one-time load of the country list.
type Loader struct {
	repo      Repository
	snapshots cache.Cache[[]models.Country]
	state     *State
	log       logger.Logger
	cfg       *Config

	once sync.Once
	done chan struct{}
}

func NewLoader(repo Repository,
	snapshots cache.Cache[[]models.Country],
	state *State,
	log logger.Logger,
	cfg *Config,
) *Loader {
	return &Loader{
		repo:      repo,
		snapshots: snapshots,
		state:     state,
		log:       log,
		cfg:       cfg,
		done:      make(chan struct{}),
	}
}

// Start loads in the background and applies the result to the state.
// Only the first call starts a load; the returned channel closes when the
// state has left the loading phase.
func (l *Loader) Start(ctx context.Context) <-chan struct{} {
	l.once.Do(func() {
		go func() {
			defer close(l.done)
			l.state.Apply(l.Load(ctx))
		}()
	})
	return l.done
}

// Load returns the snapshot from the cache, or fetches it once from the
// upstream. Failures are logged here and returned in the result.
func (l *Loader) Load(ctx context.Context) LoadResult {
	if l.snapshots != nil {
		cached, err := l.snapshots.Get(ctx, SnapshotKey)
		switch {
		case err == nil:
			l.log.Debug("country list served from snapshot cache", map[string]interface{}{"count": len(cached)})
			return LoadResult{Countries: cached, FromCache: true}
		case !errors.Is(err, cache.ErrCacheMiss):
			l.log.Info("snapshot cache unavailable, fetching upstream", map[string]interface{}{"error": err.Error()})
		}
	}

	fetchCtx := ctx
	if l.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, l.cfg.FetchTimeout)
		defer cancel()
	}

	payload, err := l.repo.FetchAll(fetchCtx)
	if err != nil {
		err = fmt.Errorf("%w: %w", models.ErrLoadFailed, err)
		l.log.Error(err, map[string]interface{}{"source": l.cfg.SourceURL})
		return LoadResult{Err: err}
	}

	if l.snapshots != nil {
		if err := l.snapshots.Set(ctx, SnapshotKey, payload.Countries, l.cfg.SnapshotTTL); err != nil {
			l.log.Info("could not store country snapshot", map[string]interface{}{"error": err.Error()})
		}
	}

	l.log.Info("country list loaded", map[string]interface{}{
		"count": len(payload.Countries),
		"shape": string(payload.Shape),
	})
	return LoadResult{Countries: payload.Countries}
}
