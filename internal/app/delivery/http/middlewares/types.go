package middlewares

import (
	"superadmin-service/internal/app/config"
	"superadmin-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	TokenVerifier  *utils.TokenVerifier
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, tokenVerifier *utils.TokenVerifier) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		TokenVerifier:  tokenVerifier,
	}
}
