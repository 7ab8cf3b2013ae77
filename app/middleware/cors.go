package middleware

import (
	"net/http"
	"os"
	"strings"
)

// CORS creates middleware that handles Cross-Origin Resource Sharing headers
// for configured origins. Origins come from CORS_ALLOWED_ORIGINS
// (comma-separated); unset means allow all, which is for development only.
func CORS() func(http.Handler) http.Handler {
	allowedOrigins := getAllowedOrigins()
	allowedMethods := strings.Join([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}, ", ")
	allowedHeaders := strings.Join([]string{"Accept", "Authorization", "Content-Type"}, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if isOriginAllowed(origin, allowedOrigins) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			// Preflight requests are answered here and never reach handlers
			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
				w.Header().Set("Access-Control-Max-Age", "3600")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func getAllowedOrigins() []string {
	originsStr := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsStr == "" {
		return []string{"*"}
	}

	origins := strings.Split(originsStr, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	if origin == "" {
		return false
	}

	for _, allowed := range allowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	return false
}
