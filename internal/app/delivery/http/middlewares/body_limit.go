package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// BodyLimit caps request bodies at RequestBodyLimitInMegabyte. A zero limit
// leaves bodies uncapped.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) * 1024 * 1024
	if limit <= 0 {
		return next
	}
	return middleware.RequestSize(limit)(next)
}
