package http

import (
	"net/http"

	"github.com/medinventory/medinv/internal/utils"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-Id"

// withRequestID attaches a request identifier to the request-scoped logger
// and echoes it back in the response. The client sends its own ID with every
// request; one is generated only when the header is missing.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	uuidGenerator := utils.NewUUIDGenerator()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuidGenerator.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}
