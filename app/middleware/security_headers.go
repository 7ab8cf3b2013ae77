package middleware

import (
	"net/http"
	"os"
)

// SecurityHeaders creates middleware that sets security-related HTTP headers
// on every response.
func SecurityHeaders() func(http.Handler) http.Handler {
	isProduction := os.Getenv("ENVIRONMENT") == "production"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

			// HSTS only makes sense behind HTTPS
			if isProduction {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
