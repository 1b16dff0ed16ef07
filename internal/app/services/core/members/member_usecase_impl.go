package members

import (
	"context"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type memberUsecase struct {
	MemberClient   contracts.SuperadminMemberClient
	AuditPublisher contracts.AuditPublisher
	Log            *zap.Logger
}

func NewMemberUsecase(memberClient contracts.SuperadminMemberClient, auditPublisher contracts.AuditPublisher, logger *zap.Logger) contracts.MemberUsecase {
	return &memberUsecase{
		MemberClient:   memberClient,
		AuditPublisher: auditPublisher,
		Log:            logger,
	}
}

func (uc *memberUsecase) ListUsers(ctx context.Context, request *requests.ListUsers) (json.RawMessage, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return uc.MemberClient.ListUsers(ctx, *request)
}

func (uc *memberUsecase) SearchUsers(ctx context.Context, request *requests.SearchUsers) (json.RawMessage, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return uc.MemberClient.SearchUsers(ctx, *request)
}

func (uc *memberUsecase) GetUserStats(ctx context.Context) (json.RawMessage, error) {
	return uc.MemberClient.GetUserStats(ctx)
}

func (uc *memberUsecase) GetUser(ctx context.Context, id string) (json.RawMessage, error) {
	if err := utils.ValidateUrlParamID(id); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	return uc.MemberClient.GetUser(ctx, id)
}

func (uc *memberUsecase) ToggleUserStatus(ctx context.Context, id string) (json.RawMessage, error) {
	return uc.toggle(ctx, id, constvars.ResourceUser, constvars.AuditEventUserStatusToggled, uc.MemberClient.ToggleUserStatus)
}

func (uc *memberUsecase) ListDoctors(ctx context.Context, request *requests.ListDoctors) (json.RawMessage, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return uc.MemberClient.ListDoctors(ctx, *request)
}

func (uc *memberUsecase) SearchDoctors(ctx context.Context, request *requests.SearchDoctors) (json.RawMessage, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if request.ExperienceMin != nil && request.ExperienceMax != nil && *request.ExperienceMin > *request.ExperienceMax {
		return nil, exceptions.ErrCannotParseQuery(nil, constvars.QueryParamExperienceMin)
	}
	return uc.MemberClient.SearchDoctors(ctx, *request)
}

func (uc *memberUsecase) GetDoctorStats(ctx context.Context) (json.RawMessage, error) {
	return uc.MemberClient.GetDoctorStats(ctx)
}

func (uc *memberUsecase) GetDoctorSpecializations(ctx context.Context) (json.RawMessage, error) {
	return uc.MemberClient.GetDoctorSpecializations(ctx)
}

func (uc *memberUsecase) GetDoctor(ctx context.Context, id string) (json.RawMessage, error) {
	if err := utils.ValidateUrlParamID(id); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	return uc.MemberClient.GetDoctor(ctx, id)
}

func (uc *memberUsecase) ToggleDoctorStatus(ctx context.Context, id string) (json.RawMessage, error) {
	return uc.toggle(ctx, id, constvars.ResourceDoctor, constvars.AuditEventDoctorStatusToggled, uc.MemberClient.ToggleDoctorStatus)
}

func (uc *memberUsecase) toggle(
	ctx context.Context,
	id, resource, event string,
	call func(ctx context.Context, id string) (json.RawMessage, error),
) (json.RawMessage, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("memberUsecase.toggle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resource),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	if err := utils.ValidateUrlParamID(id); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}

	member, err := call(ctx, id)
	if err != nil {
		uc.Log.Error("memberUsecase.toggle error from superadmin API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, resource),
			zap.Error(err),
		)
		return nil, err
	}

	uc.AuditPublisher.Publish(ctx, utils.NewAuditEvent(ctx, event, id, nil))
	uc.Log.Info("memberUsecase.toggle succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resource),
		zap.String(constvars.LoggingResourceIDKey, id),
	)
	return member, nil
}
