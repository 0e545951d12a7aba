package middlewarex

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"roadservice/internal/http/handlers"
)

// RateLimit caps the API at perMin requests per minute across all
// clients, with a burst of the same size. Zero disables the limit. Rejected
// requests get the API error body with status 429.
func RateLimit(perMin int) func(http.Handler) http.Handler {
	if perMin <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Warn().Str("path", r.URL.Path).Msg("rate limit exceeded")
				w.Header().Set("Retry-After", "60")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(handlers.ErrorResponse{
					Message: "Too Many Requests",
					Code:    handlers.CodeTooManyRequests,
					Details: "rate limit exceeded, retry later",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
