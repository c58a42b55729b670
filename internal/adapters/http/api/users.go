// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/okian/voyago/internal/domain/model"
)

// UsersHandler serves seeded user profiles and preference updates.
type UsersHandler struct {
	deps Dependencies
}

// NewUsersHandler creates a new users handler.
func NewUsersHandler(deps Dependencies) *UsersHandler {
	return &UsersHandler{deps: deps}
}

// HandleGetUsers handles GET /users requests.
func (h *UsersHandler) HandleGetUsers(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_users"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	users, err := h.deps.Users(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// preferencesRequest mirrors the JSON schema for PUT /users/{id}/preferences.
type preferencesRequest struct {
	Purpose       string   `json:"purpose"`
	BudgetLevel   string   `json:"budget_level"`
	PreferredTags []string `json:"preferred_tags"`
}

func (p preferencesRequest) validate() error {
	if !model.BudgetLevel(p.BudgetLevel).Valid() {
		return NewKind("api.put_preferences", ErrBadRequest)
	}
	return nil
}

// HandlePutPreferences handles PUT /users/{id}/preferences requests.
func (h *UsersHandler) HandlePutPreferences(w http.ResponseWriter, r *http.Request) {
	const op = "api.put_preferences"
	if r.Method != http.MethodPut {
		http.NotFound(w, r)
		return
	}
	// Extract path parameters after /users/
	path := strings.TrimPrefix(r.URL.Path, "/users/")
	userID, rest, ok := strings.Cut(path, "/")
	if !ok || userID == "" || rest != "preferences" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	var req preferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	user, err := h.deps.UpdatePreferences(r.Context(), userID, model.Preferences{
		Purpose:       req.Purpose,
		BudgetLevel:   model.BudgetLevel(req.BudgetLevel),
		PreferredTags: req.PreferredTags,
	})
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, user)
}
