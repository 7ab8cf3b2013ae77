package middleware

import (
	"net/http"
	"os"
	"strconv"
)

// BodyLimit creates middleware that caps request body size. Oversized bodies
// are rejected with 413 before any handler reads them.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = 1 << 20 // 1MB
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

			if r.ContentLength > maxBytes {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				w.Write([]byte(`{"error":"Request body too large","code":"PAYLOAD_TOO_LARGE"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// BodyLimitFromEnv reads the cap from REQUEST_BODY_MAX_SIZE (bytes).
func BodyLimitFromEnv() func(http.Handler) http.Handler {
	maxSizeStr := os.Getenv("REQUEST_BODY_MAX_SIZE")
	if maxSizeStr == "" {
		return BodyLimit(0)
	}
	maxSize, err := strconv.ParseInt(maxSizeStr, 10, 64)
	if err != nil {
		return BodyLimit(0)
	}
	return BodyLimit(maxSize)
}
