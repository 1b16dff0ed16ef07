package contracts

import (
	"context"

	"github.com/goccy/go-json"
)

type DashboardUsecase interface {
	GetOverview(ctx context.Context) (json.RawMessage, error)
	GetStats(ctx context.Context) (json.RawMessage, error)
}
