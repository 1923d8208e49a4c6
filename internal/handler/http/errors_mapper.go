package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-auth-service/internal/app"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidationFailed:     http.StatusBadRequest,
	service.ErrDuplicateEmail:       http.StatusBadRequest,
	service.ErrDuplicateUsername:    http.StatusBadRequest,
	service.ErrUserNotFound:         http.StatusNotFound,
	service.ErrAuthenticationFailed: http.StatusUnauthorized,

	errInvalidJSON:   http.StatusBadRequest,
	errInvalidUserID: http.StatusBadRequest,
}

// publicErrors are sentinels whose text is already a user-facing message.
var publicErrors = []error{
	service.ErrDuplicateEmail,
	service.ErrDuplicateUsername,
	service.ErrAuthenticationFailed,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// newErrorResponse builds the envelope for err. Details of unexpected errors
// never reach the caller.
func newErrorResponse(err error, path string) models.ErrorResponse {
	status := statusFromError(err)
	resp := models.ErrorResponse{
		Status:    status,
		Timestamp: time.Now().Format(time.RFC3339),
		Path:      path,
	}

	var validationErr *service.ValidationError
	var notFoundErr *service.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		resp.Error = app.MsgValidationFailed
		resp.Errors = validationErr.Violations
	case errors.As(err, &notFoundErr):
		resp.Error = notFoundErr.Error()
	case errors.Is(err, errInvalidJSON), errors.Is(err, errInvalidUserID):
		resp.Error = app.MsgInvalidDataProvided
		resp.Message = err.Error()
	case status == http.StatusInternalServerError:
		resp.Error = app.MsgInternalServerError
		resp.Message = app.MsgUnexpectedProblem
	default:
		resp.Error = http.StatusText(status)
		for _, target := range publicErrors {
			if errors.Is(err, target) {
				resp.Error = target.Error()
				break
			}
		}
	}

	return resp
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	resp := newErrorResponse(err, r.URL.Path)
	if resp.Status == http.StatusInternalServerError {
		log.Err(err).Str("path", resp.Path).Msg("unexpected error while handling request")
	} else {
		log.Debug().Err(err).Int("status", resp.Status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, resp, resp.Status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
