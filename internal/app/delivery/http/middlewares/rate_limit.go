package middlewares

import (
	"net/http"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimiter limits each client IP to MaxRequests per window of
// MaxTimeRequestsPerSeconds.
func (m *Middlewares) RateLimiter() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
