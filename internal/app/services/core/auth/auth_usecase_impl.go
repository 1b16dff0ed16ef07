package auth

import (
	"context"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	AuthClient contracts.SuperadminAuthClient
	Log        *zap.Logger
}

func NewAuthUsecase(authClient contracts.SuperadminAuthClient, logger *zap.Logger) contracts.AuthUsecase {
	return &authUsecase{
		AuthClient: authClient,
		Log:        logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeLoginRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("authUsecase.Login error validating request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	login, err := uc.AuthClient.Login(ctx, *request)
	if err != nil {
		uc.Log.Error("authUsecase.Login error from superadmin API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return login, nil
}

func (uc *authUsecase) GetProfile(ctx context.Context) (*responses.Profile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAdminIDKey, utils.GetAdminID(ctx)),
	)

	profile, err := uc.AuthClient.GetProfile(ctx)
	if err != nil {
		uc.Log.Error("authUsecase.GetProfile error from superadmin API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return profile, nil
}
