// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// AnalyticsHandler serves and resets the engagement analytics snapshot.
type AnalyticsHandler struct {
	deps Dependencies
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(deps Dependencies) *AnalyticsHandler {
	return &AnalyticsHandler{deps: deps}
}

// HandleAnalytics handles GET /analytics (snapshot with the recent event
// window) and DELETE /analytics (unconditional reset, no confirmation).
func (h *AnalyticsHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.Metrics(r.Context()))
	case http.MethodDelete:
		h.deps.ResetMetrics(r.Context())
		w.WriteHeader(http.StatusNoContent)
	default:
		http.NotFound(w, r)
	}
}
