package utils

import (
	"context"
	"superadmin-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func contextString(ctx context.Context, key constvars.ContextKey) string {
	value, _ := ctx.Value(key).(string)
	return value
}

func GetRequestID(ctx context.Context) string {
	return contextString(ctx, constvars.CONTEXT_REQUEST_ID_KEY)
}

func GetAccessToken(ctx context.Context) string {
	return contextString(ctx, constvars.CONTEXT_ACCESS_TOKEN_KEY)
}

func GetAdminID(ctx context.Context) string {
	return contextString(ctx, constvars.CONTEXT_ADMIN_ID_KEY)
}

// GenerateRequestID mints the id used when the caller sent none.
func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}
