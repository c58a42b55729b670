// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/okian/voyago/internal/domain/model"
)

// RecommendationsHandler handles recommendation requests.
type RecommendationsHandler struct {
	deps Dependencies
}

// NewRecommendationsHandler creates a new recommendations handler.
func NewRecommendationsHandler(deps Dependencies) *RecommendationsHandler {
	return &RecommendationsHandler{deps: deps}
}

// recommendationRequest mirrors the JSON schema for POST /recommendations.
type recommendationRequest struct {
	UserID      string `json:"user_id"`
	Query       string `json:"query"`
	Purpose     string `json:"purpose"`
	BudgetLevel string `json:"budget_level"`
	SessionID   string `json:"session_id"`
}

func (r recommendationRequest) validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return NewKind("api.post_recommendations", ErrBadRequest)
	}
	if r.BudgetLevel != "" && !model.BudgetLevel(r.BudgetLevel).Valid() {
		return NewKind("api.post_recommendations", ErrBadRequest)
	}
	return nil
}

// HandlePostRecommendations handles POST /recommendations requests.
// A missing session_id gets a generated one; it is echoed back so the client
// can attach click/booking events to the same session.
func (h *RecommendationsHandler) HandlePostRecommendations(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_recommendations"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	resp, err := h.deps.GetRecommendations(r.Context(), model.RecommendationRequest{
		UserID:         req.UserID,
		Query:          req.Query,
		Purpose:        req.Purpose,
		BudgetOverride: model.BudgetLevel(req.BudgetLevel),
		SessionID:      req.SessionID,
	})
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	writeJSON(w, http.StatusOK, struct {
		SessionID string `json:"session_id"`
		model.RecommendationResponse
	}{SessionID: req.SessionID, RecommendationResponse: resp})
}
