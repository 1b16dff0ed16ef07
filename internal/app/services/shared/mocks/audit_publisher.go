package mocks

import (
	"context"
	"superadmin-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/mock"
)

type AuditPublisher struct {
	mock.Mock
}

func (m *AuditPublisher) Publish(ctx context.Context, event requests.AuditEvent) {
	m.Called(ctx, event)
}
