// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	repository "github.com/okian/voyago/internal/adapters/repository"
	"github.com/okian/voyago/internal/adapters/tracking"
	"github.com/okian/voyago/internal/domain/intent"
	"github.com/okian/voyago/internal/domain/model"
	"github.com/okian/voyago/internal/domain/ranking"
	"github.com/okian/voyago/internal/domain/scoring"
	"github.com/okian/voyago/pkg/logger"
	"github.com/okian/voyago/pkg/metrics"
)

// Service wires the intent extractor, scorer, ranker, stores and the
// analytics accumulator behind the four public engine operations.
type Service struct {
	mu sync.RWMutex

	// Core components
	store     *repository.MemoryStore
	extractor *intent.Extractor
	ranker    *ranking.Ranker
	analytics tracking.Accumulator

	// Configuration
	maxResults   int
	recentWindow int
	scoringOpts  []scoring.Option

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxResults caps each ranked catalog slice.
func WithMaxResults(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxResults = n
		}
	}
}

// WithRecentEventWindow sets how many trailing events analytics snapshots
// return.
func WithRecentEventWindow(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.recentWindow = n
		}
	}
}

// WithScoringOptions forwards options to the item scorer.
func WithScoringOptions(opts ...scoring.Option) Option {
	return func(s *Service) {
		s.scoringOpts = append(s.scoringOpts, opts...)
	}
}

// WithStore injects a prebuilt store instead of the embedded seed data.
func WithStore(store *repository.MemoryStore) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithAccumulator injects a prebuilt analytics accumulator.
func WithAccumulator(acc tracking.Accumulator) Option {
	return func(s *Service) {
		if acc != nil {
			s.analytics = acc
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxResults:   ranking.DefaultMaxResults,
		recentWindow: tracking.DefaultRecentWindow,
		logger:       nil, // Will be replaced when the service starts
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting recommendation service...")

	if s.store == nil {
		store, err := repository.LoadSeed()
		if err != nil {
			return err
		}
		s.store = store
	}
	if s.analytics == nil {
		s.analytics = tracking.NewAccumulator(
			tracking.WithRecentWindow(s.recentWindow),
		)
	}
	s.extractor = intent.NewExtractor()
	scorer := scoring.NewWeightedScorer(s.scoringOpts...)
	s.ranker = ranking.NewRanker(scorer, ranking.WithMaxResults(s.maxResults))

	users, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	metrics.UpdateSeededUsers(len(users))
	metrics.UpdateCatalogItems(s.store.Count(ctx))

	s.started = true
	s.logger.Info(ctx, "recommendation service started",
		logger.Int("users", len(users)),
		logger.Int("catalogItems", s.store.Count(ctx)),
		logger.Int("maxResults", s.maxResults),
	)
	return nil
}

// Stop shuts down the service. All state is in memory; nothing to flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "recommendation service stopped")
}

// GetRecommendations ranks all three catalogs for the user and records one
// impression per returned item before returning. An unknown user id fails
// with repository.ErrUserNotFound and mutates nothing.
func (s *Service) GetRecommendations(ctx context.Context, req model.RecommendationRequest) (model.RecommendationResponse, error) {
	start := time.Now()

	user, err := s.store.Get(ctx, req.UserID)
	if err != nil {
		metrics.RecordUnknownUserRequest()
		return model.RecommendationResponse{}, err
	}

	var intentTags []string
	if req.Query != "" {
		intentTags = s.extractor.Extract(req.Query)
		metrics.RecordIntentTags(len(intentTags))
	}

	var resp model.RecommendationResponse
	var impressionIDs []string
	scored := 0
	for _, rank := range []struct {
		category model.Category
		dst      *[]model.ScoredItem
	}{
		{model.CategoryFlights, &resp.Flights},
		{model.CategoryHotels, &resp.Hotels},
		{model.CategoryPackages, &resp.Packages},
	} {
		items, err := s.store.Items(ctx, rank.category)
		if err != nil {
			return model.RecommendationResponse{}, err
		}
		ranked := s.ranker.Rank(items, user, intentTags, req.BudgetOverride)
		*rank.dst = ranked
		scored += len(items)
		for _, it := range ranked {
			impressionIDs = append(impressionIDs, it.ID)
		}
	}

	s.analytics.RecordImpressions(ctx, req.SessionID, req.UserID, impressionIDs)

	metrics.RecordRecommendationRequest()
	metrics.RecordItemsScored(scored)
	metrics.RecordImpressions(len(impressionIDs))
	metrics.RecordScoringLatency(float64(time.Since(start).Milliseconds()))

	s.logger.Debug(ctx, "recommendations served",
		logger.String("userID", req.UserID),
		logger.String("sessionID", req.SessionID),
		logger.Int("intentTags", len(intentTags)),
		logger.Int("impressions", len(impressionIDs)),
	)
	return resp, nil
}

// TrackEvent records one engagement event and returns the updated snapshot.
func (s *Service) TrackEvent(ctx context.Context, sessionID, userID string, kind model.EventKind, itemID string) model.Snapshot {
	snap := s.analytics.Record(ctx, sessionID, userID, kind, itemID)
	switch kind {
	case model.EventClick:
		metrics.RecordClick()
	case model.EventBooking:
		metrics.RecordBooking()
	}
	return snap
}

// Metrics returns current analytics counters plus the recent event window.
func (s *Service) Metrics(ctx context.Context) model.Snapshot {
	return s.analytics.Snapshot(ctx)
}

// ResetMetrics unconditionally zeroes the analytics accumulator.
func (s *Service) ResetMetrics(ctx context.Context) {
	s.analytics.Reset(ctx)
	metrics.RecordAnalyticsReset()
	s.logger.Info(ctx, "analytics reset")
}

// Users returns all seeded users.
func (s *Service) Users(ctx context.Context) ([]model.User, error) {
	return s.store.List(ctx)
}

// Catalog returns one catalog in seed order.
func (s *Service) Catalog(ctx context.Context, category model.Category) ([]model.TravelItem, error) {
	return s.store.Items(ctx, category)
}

// UpdatePreferences replaces a user's preference set.
func (s *Service) UpdatePreferences(ctx context.Context, userID string, prefs model.Preferences) (model.User, error) {
	user, err := s.store.UpdatePreferences(ctx, userID, prefs)
	if err != nil {
		return model.User{}, err
	}
	s.logger.Info(ctx, "preferences updated",
		logger.String("userID", userID),
		logger.String("budgetLevel", string(prefs.BudgetLevel)),
		logger.Int("preferredTags", len(prefs.PreferredTags)),
	)
	return user, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":    s.started,
		"maxResults": s.maxResults,
	}

	if s.started {
		users, err := s.store.List(ctx)
		if err == nil {
			stats["users"] = len(users)
		}
		stats["catalogItems"] = s.store.Count(ctx)

		snap := s.analytics.Snapshot(ctx)
		stats["impressions"] = snap.Impressions
		stats["clicks"] = snap.Clicks
		stats["bookings"] = snap.Bookings

		metrics.UpdateCatalogItems(s.store.Count(ctx))
	}
	return stats
}
