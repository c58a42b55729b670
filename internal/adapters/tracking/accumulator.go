// Package tracking owns the in-memory engagement analytics state.
package tracking

import (
	"context"
	"sync"
	"time"

	"github.com/okian/voyago/internal/domain/model"
)

// DefaultRecentWindow caps the event log slice returned by Snapshot. The full
// log is retained internally.
const DefaultRecentWindow = 20

// Accumulator records engagement events and serves derived metrics. It is the
// single piece of mutable shared state in the engine; implementations must be
// safe for concurrent callers without lost updates.
type Accumulator interface {
	// RecordImpressions appends one impression event per item id, all sharing
	// the session id and the call-time timestamp, and bumps the impression
	// counter by len(itemIDs).
	RecordImpressions(ctx context.Context, sessionID, userID string, itemIDs []string)

	// Record appends one event and, when kind is click or booking, increments
	// the matching counter. Returns the post-mutation snapshot.
	Record(ctx context.Context, sessionID, userID string, kind model.EventKind, itemID string) model.Snapshot

	// Snapshot returns current counters, derived rates and the recent event
	// window.
	Snapshot(ctx context.Context) model.Snapshot

	// Reset unconditionally returns the accumulator to the zero state.
	Reset(ctx context.Context)
}

// Option applies a configuration option to the accumulator.
type Option func(*memAccumulator)

// WithRecentWindow sets how many trailing events Snapshot returns.
func WithRecentWindow(n int) Option {
	return func(a *memAccumulator) {
		if n > 0 {
			a.recentWindow = n
		}
	}
}

// WithClock overrides the timestamp source. Used by tests for determinism.
func WithClock(clock func() time.Time) Option {
	return func(a *memAccumulator) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// memAccumulator implements Accumulator behind a mutex. Derived rates are
// never stored; they are recomputed from the counters on every snapshot so
// they cannot drift.
type memAccumulator struct {
	mu sync.Mutex

	impressions int
	clicks      int
	bookings    int
	events      []model.TrackingEvent

	recentWindow int
	clock        func() time.Time
	lastTS       time.Time
}

// NewAccumulator creates an in-memory accumulator with configuration options.
func NewAccumulator(opts ...Option) Accumulator {
	a := &memAccumulator{
		recentWindow: DefaultRecentWindow,
		clock:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// now returns a timestamp clamped to be non-decreasing per process, even if
// the wall clock steps backwards.
func (a *memAccumulator) now() time.Time {
	ts := a.clock()
	if ts.Before(a.lastTS) {
		ts = a.lastTS
	}
	a.lastTS = ts
	return ts
}

func (a *memAccumulator) RecordImpressions(_ context.Context, sessionID, userID string, itemIDs []string) {
	if len(itemIDs) == 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	ts := a.now()
	for _, itemID := range itemIDs {
		a.events = append(a.events, model.TrackingEvent{
			SessionID: sessionID,
			UserID:    userID,
			Kind:      model.EventImpression,
			ItemID:    itemID,
			TS:        ts,
		})
	}
	a.impressions += len(itemIDs)
}

func (a *memAccumulator) Record(_ context.Context, sessionID, userID string, kind model.EventKind, itemID string) model.Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.events = append(a.events, model.TrackingEvent{
		SessionID: sessionID,
		UserID:    userID,
		Kind:      kind,
		ItemID:    itemID,
		TS:        a.now(),
	})
	switch kind {
	case model.EventClick:
		a.clicks++
	case model.EventBooking:
		a.bookings++
	}
	return a.snapshotLocked()
}

func (a *memAccumulator) Snapshot(_ context.Context) model.Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

func (a *memAccumulator) Reset(_ context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.impressions = 0
	a.clicks = 0
	a.bookings = 0
	a.events = nil
}

// snapshotLocked builds a snapshot; callers must hold mu.
func (a *memAccumulator) snapshotLocked() model.Snapshot {
	snap := model.Snapshot{
		Impressions: a.impressions,
		Clicks:      a.clicks,
		Bookings:    a.bookings,
	}
	if a.impressions > 0 {
		snap.CTR = float64(a.clicks) / float64(a.impressions) * 100
	}
	if a.clicks > 0 {
		snap.Conversion = float64(a.bookings) / float64(a.clicks) * 100
	}

	events := a.events
	if len(events) > a.recentWindow {
		events = events[len(events)-a.recentWindow:]
	}
	snap.Events = append([]model.TrackingEvent(nil), events...)
	return snap
}
