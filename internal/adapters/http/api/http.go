// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/voyago/internal/adapters/repository"
	"github.com/okian/voyago/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// GetRecommendations ranks the three catalogs for one user/query/context.
	GetRecommendations(ctx context.Context, req model.RecommendationRequest) (model.RecommendationResponse, error)

	// TrackEvent records one engagement event and returns the updated snapshot.
	TrackEvent(ctx context.Context, sessionID, userID string, kind model.EventKind, itemID string) model.Snapshot

	// Metrics and ResetMetrics expose the analytics accumulator.
	Metrics(ctx context.Context) model.Snapshot
	ResetMetrics(ctx context.Context)

	// Seed data browse and preference updates.
	Users(ctx context.Context) ([]model.User, error)
	Catalog(ctx context.Context, category model.Category) ([]model.TravelItem, error)
	UpdatePreferences(ctx context.Context, userID string, prefs model.Preferences) (model.User, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler          *HealthHandler
	statsHandler           *StatsHandler
	recommendationsHandler *RecommendationsHandler
	trackHandler           *TrackHandler
	analyticsHandler       *AnalyticsHandler
	usersHandler           *UsersHandler
	catalogHandler         *CatalogHandler
	dashboardHandler       *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:          NewHealthHandler(),
		statsHandler:           NewStatsHandler(statsProvider),
		recommendationsHandler: NewRecommendationsHandler(deps),
		trackHandler:           NewTrackHandler(deps),
		analyticsHandler:       NewAnalyticsHandler(deps),
		usersHandler:           NewUsersHandler(deps),
		catalogHandler:         NewCatalogHandler(deps),
		dashboardHandler:       newdashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/recommendations", MetricsMiddleware(s.recommendationsHandler.HandlePostRecommendations, "recommendations"))
	mux.HandleFunc("/track", MetricsMiddleware(s.trackHandler.HandlePostTrack, "track"))
	mux.HandleFunc("/analytics", MetricsMiddleware(s.analyticsHandler.HandleAnalytics, "analytics"))
	mux.HandleFunc("/users", MetricsMiddleware(s.usersHandler.HandleGetUsers, "users"))
	mux.HandleFunc("/users/", MetricsMiddleware(s.usersHandler.HandlePutPreferences, "user_preferences"))
	mux.HandleFunc("/catalog/", MetricsMiddleware(s.catalogHandler.HandleGetCatalog, "catalog"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrUserNotFound) ||
		errors.Is(err, repository.ErrUnknownCategory)
}
