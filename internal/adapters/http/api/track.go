// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/voyago/internal/domain/model"
)

// TrackHandler handles engagement event reports.
type TrackHandler struct {
	deps Dependencies
}

// NewTrackHandler creates a new track handler.
func NewTrackHandler(deps Dependencies) *TrackHandler {
	return &TrackHandler{deps: deps}
}

// trackRequest mirrors the JSON schema for POST /track.
type trackRequest struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	EventType string `json:"event_type"`
	ItemID    string `json:"item_id"`
}

func (t trackRequest) validate() error {
	switch {
	case strings.TrimSpace(t.SessionID) == "":
		return errors.New("missing session_id")
	case strings.TrimSpace(t.UserID) == "":
		return errors.New("missing user_id")
	case strings.TrimSpace(t.ItemID) == "":
		return errors.New("missing item_id")
	}
	if !model.EventKind(t.EventType).Valid() {
		return errors.New("event_type must be impression, click or booking")
	}
	return nil
}

// HandlePostTrack handles POST /track requests. Impressions are normally
// recorded internally when recommendations are served, but externally
// reported impression/click/booking events are accepted uniformly.
func (h *TrackHandler) HandlePostTrack(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_track"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	snap := h.deps.TrackEvent(r.Context(), req.SessionID, req.UserID, model.EventKind(req.EventType), req.ItemID)
	writeJSON(w, http.StatusOK, snap)
}
