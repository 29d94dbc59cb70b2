// Package session owns the one in-memory Trip aggregate per deployment.
// Handlers apply pure tripstore operations through it; every change schedules
// a debounced, fire-and-forget save of the whole document. Save failures are
// logged and dropped: the in-memory trip stays the source of truth and the
// next successful save carries the latest state forward.
package session

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mialiew/futaritabi/internal/db"
	"github.com/mialiew/futaritabi/internal/models"
	"github.com/mialiew/futaritabi/internal/tripstore"
)

// SaveDelay is the debounce window between an edit and its save.
const SaveDelay = 1000 * time.Millisecond

// saveTimeout bounds each save round-trip; a timed-out save is treated like
// any other failed save.
const saveTimeout = 10 * time.Second

// Notifier is told after each successful save so the partner's open client
// can refresh. Implementations must not block.
type Notifier interface {
	TripUpdated(trip models.Trip)
}

// Session serializes access to the current trip value. There is a single
// logical writer: operations replace the whole value under the lock, never
// edit it in place, so the only race left is save ordering, which the
// store's last-write-wins upsert resolves.
type Session struct {
	store    db.TripCollection
	notifier Notifier
	debounce *debouncer

	mu   sync.RWMutex
	trip models.Trip
}

// New loads the persisted trip document and builds the session around it.
// Load failure and a missing document are handled identically: the fallback
// trip is substituted and the session continues. Nothing here blocks the
// caller on an error path (fail-open).
func New(ctx context.Context, store db.TripCollection, notifier Notifier, fallback func() models.Trip) *Session {
	s := &Session{
		store:    store,
		notifier: notifier,
		debounce: newDebouncer(SaveDelay),
	}
	trip, err := store.LoadTrip(ctx, models.TripKey)
	if err != nil || trip == nil {
		if err != nil && err != db.ErrNotFound {
			log.WithError(err).Warn("trip load failed, starting from fallback")
		}
		s.trip = fallback()
		return s
	}
	s.trip = *trip
	return s
}

// Current returns the trip value as of now.
func (s *Session) Current() models.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trip
}

// Apply replaces the trip with op(current) and schedules a save. op must be
// pure; it receives the current value and returns the next one.
func (s *Session) Apply(op func(models.Trip) models.Trip) models.Trip {
	s.mu.Lock()
	s.trip = op(s.trip)
	next := s.trip
	s.mu.Unlock()

	s.debounce.Schedule(s.flush)
	return next
}

// Reset discards the current trip for a fresh blank one. Destructive and
// unconditional: user confirmation is the caller's responsibility.
func (s *Session) Reset() models.Trip {
	return s.Apply(func(models.Trip) models.Trip {
		return tripstore.Blank()
	})
}

// Flush saves immediately, bypassing the debounce window. Used on shutdown.
func (s *Session) Flush() {
	s.debounce.Stop()
	s.flush()
}

func (s *Session) flush() {
	trip := s.Current()

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := s.store.SaveTrip(ctx, models.TripKey, trip); err != nil {
		// Fire-and-forget: no retry queue, no user-visible error.
		log.WithError(err).Warn("trip save failed")
		return
	}
	if s.notifier != nil {
		s.notifier.TripUpdated(trip)
	}
}
