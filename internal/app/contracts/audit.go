package contracts

import (
	"context"
	"superadmin-service/internal/pkg/dto/requests"
)

// AuditPublisher records admin mutations. Publishing is best effort and
// never fails the caller.
type AuditPublisher interface {
	Publish(ctx context.Context, event requests.AuditEvent)
}
