package library

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tavisk/lux/internal/logging"
)

// Snapshot is the latest library contents available to the UI.
type Snapshot struct {
	Items               []Item
	LastScan            time.Time
	LastError           error
	ConsecutiveFailures int
}

// Store coordinates concurrent updates to the snapshot between the UI
// and the background rescanner.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored items. Scan returns partial results
// alongside its first error, and a partial library still renders, so
// a failed scan only keeps the previous items when it produced nothing
// at all.
func (s *Store) Update(items []Item, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastScan = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		if len(items) > 0 {
			s.snapshot.Items = cloneItems(items)
		}
		return
	}
	s.snapshot.Items = cloneItems(items)
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Items = cloneItems(s.snapshot.Items)
	return snap
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

// StartScanner launches a background goroutine that rescans dirs at a
// fixed cadence so the grid tracks files appearing and disappearing.
// It returns immediately.
func StartScanner(ctx context.Context, store *Store, dirs, exts []string, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			items, err := Scan(dirs, exts)
			if err != nil {
				logging.L().Warn("library rescan failed", zap.Error(err))
			}
			store.Update(items, err)
		}
	}()
}
