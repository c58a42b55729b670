// Package model contains domain models passed between layers.
package model

import "time"

// BudgetLevel is a coarse spending bracket attached to a user profile.
// A recommendation request may override it for a single call.
type BudgetLevel string

// Known budget levels.
const (
	BudgetLow  BudgetLevel = "low"
	BudgetMid  BudgetLevel = "mid"
	BudgetHigh BudgetLevel = "high"
)

// Valid reports whether b is one of the known budget levels.
func (b BudgetLevel) Valid() bool {
	switch b {
	case BudgetLow, BudgetMid, BudgetHigh:
		return true
	}
	return false
}

// Preferences holds the mutable part of a user profile.
type Preferences struct {
	// Purpose is "business", "leisure" or empty when unset.
	Purpose       string      `json:"purpose"`
	BudgetLevel   BudgetLevel `json:"budget_level"`
	PreferredTags []string    `json:"preferred_tags"`
}

// HistoryEntry records one past interaction of a user, used as a weak
// collaborative signal during scoring.
type HistoryEntry struct {
	Type  string   `json:"type"`
	Tags  []string `json:"tags"`
	Price int      `json:"price"`
}

// User is a seeded profile. Identity is immutable; Preferences change only
// through explicit preference updates.
type User struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Preferences Preferences    `json:"preferences"`
	History     []HistoryEntry `json:"history"`
}

// ColdStart reports whether the user has no stored tag preferences, which
// switches scoring to the popularity fallback.
func (u User) ColdStart() bool {
	return len(u.Preferences.PreferredTags) == 0
}

// Category identifies one of the three disjoint catalogs.
type Category string

// Known catalog categories.
const (
	CategoryFlights  Category = "flights"
	CategoryHotels   Category = "hotels"
	CategoryPackages Category = "packages"
)

// Valid reports whether c names a known catalog.
func (c Category) Valid() bool {
	switch c {
	case CategoryFlights, CategoryHotels, CategoryPackages:
		return true
	}
	return false
}

// TravelItem is an immutable catalog entry. Price is in currency-agnostic
// integer units; Rating is in [1,5]. Details carries display-only attributes
// such as duration, location or airline.
type TravelItem struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Tags     []string       `json:"tags"`
	Price    int            `json:"price"`
	Rating   float64        `json:"rating"`
	Trending bool           `json:"trending,omitempty"`
	Details  map[string]any `json:"details,omitempty"`
}

// ScoredItem annotates a TravelItem with a relevance score and up to three
// human-readable justifications. Produced fresh on every ranking call.
type ScoredItem struct {
	TravelItem
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// EventKind classifies a tracking event.
type EventKind string

// Known event kinds.
const (
	EventImpression EventKind = "impression"
	EventClick      EventKind = "click"
	EventBooking    EventKind = "booking"
)

// Valid reports whether k is one of the known event kinds.
func (k EventKind) Valid() bool {
	switch k {
	case EventImpression, EventClick, EventBooking:
		return true
	}
	return false
}

// TrackingEvent is an immutable, append-only engagement record.
type TrackingEvent struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Kind      EventKind `json:"event_type"`
	ItemID    string    `json:"item_id"`
	TS        time.Time `json:"timestamp"`
}

// RecommendationRequest carries one recommendation call's inputs.
type RecommendationRequest struct {
	UserID string `json:"user_id"`
	// Query is free text; empty disables intent boosts.
	Query string `json:"query,omitempty"`
	// Purpose mirrors the client's trip-purpose selector. Carried through for
	// analytics; the scorer does not weigh it.
	Purpose string `json:"purpose,omitempty"`
	// BudgetOverride, when set, wins over the stored preference for this call.
	BudgetOverride BudgetLevel `json:"budget_level,omitempty"`
	SessionID      string      `json:"session_id"`
}

// RecommendationResponse holds the three independently ranked catalogs.
type RecommendationResponse struct {
	Flights  []ScoredItem `json:"flights"`
	Hotels   []ScoredItem `json:"hotels"`
	Packages []ScoredItem `json:"packages"`
}

// Snapshot is a point-in-time view of the analytics accumulator. CTR and
// Conversion are derived from the counters on every read and never mutated
// independently.
type Snapshot struct {
	Impressions int `json:"impressions"`
	Clicks      int `json:"clicks"`
	Bookings    int `json:"bookings"`
	// CTR is clicks/impressions*100; 0 when there are no impressions.
	CTR float64 `json:"ctr"`
	// Conversion is bookings/clicks*100; 0 when there are no clicks.
	Conversion float64 `json:"conversion"`
	// Events is the recent window of the log, newest last.
	Events []TrackingEvent `json:"events"`
}
