package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserManager.FindAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.PublicUsers(users), http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserManager.FindByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, user.Public(), http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var candidate models.User
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}

	updated, err := h.services.UserManager.Update(r.Context(), candidate)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", updated.ID).Msg("user updated")
	h.writeJSON(w, r, updated.Public(), http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.UserManager.DeleteByID(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", id).Msg("user deleted")
	w.WriteHeader(http.StatusNoContent)
}

func userIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidUserID, raw)
	}
	return id, nil
}
