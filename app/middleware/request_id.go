package middleware

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"

	applogger "github.com/hirewire/jobboard/app/logger"
)

// RequestIDTracing creates middleware that propagates the request ID through
// the context logger and echoes it in the X-Request-ID response header.
func RequestIDTracing() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Set by chi's middleware.RequestID earlier in the chain
			requestID := middleware.GetReqID(r.Context())
			if requestID == "" {
				requestID = strconv.FormatUint(middleware.NextRequestID(), 10)
			}

			w.Header().Set("X-Request-ID", requestID)

			logger := applogger.Logger.With().Str("request_id", requestID).Logger()
			ctx := logger.WithContext(r.Context())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
