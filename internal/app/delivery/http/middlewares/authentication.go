package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate requires a bearer token signed by the superadmin API and puts
// it, with the admin it names, into the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errors.New("empty bearer token")))
			return
		}

		adminID, err := m.TokenVerifier.Subject(token)
		if err != nil {
			m.Log.Info("Middlewares.Authenticate rejected token",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ACCESS_TOKEN_KEY, token)
		ctx = context.WithValue(ctx, constvars.CONTEXT_ADMIN_ID_KEY, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
