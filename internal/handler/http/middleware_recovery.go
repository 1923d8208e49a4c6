package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-auth-service/internal/logger"
)

// withRecovery turns a panic in a downstream handler into the 500 envelope.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			h.writeError(w, r, fmt.Errorf("%w: %v", errPanic, rec))
		}()

		next.ServeHTTP(w, r)
	})
}
