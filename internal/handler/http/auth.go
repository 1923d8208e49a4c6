package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var candidate models.User
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}

	registered, err := h.services.UserManager.Register(ctx, candidate)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", registered.ID).Msg("user registered")
	h.writeJSON(w, r, registered.Public(), http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}

	user, err := h.services.UserManager.Login(ctx, credentials.Username, credentials.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.ID).Msg("user successfully logged in")
	h.writeJSON(w, r, user.Public(), http.StatusOK)
}
