// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-auth-service/internal/app"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

// routeNotFound is registered both as the router's NotFound and
// MethodNotAllowed handler, so an unsupported method on a known path is
// indistinguishable from an unknown path: both get HTTP 404 with the
// route-not-found envelope.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("no route matched")

	h.writeJSON(w, r, models.ErrorResponse{
		Status:    http.StatusNotFound,
		Timestamp: time.Now().Format(time.RFC3339),
		Error:     app.MsgRouteNotFound,
		Message:   fmt.Sprintf(app.MsgRequestedURLNotFound, r.URL.String()),
		Path:      r.URL.Path,
	}, http.StatusNotFound)
}
