package cms

import (
	"context"
	"errors"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type cmsUsecase struct {
	CMSClient      contracts.SuperadminCMSClient
	AuditPublisher contracts.AuditPublisher
	Log            *zap.Logger
}

func NewCMSUsecase(cmsClient contracts.SuperadminCMSClient, auditPublisher contracts.AuditPublisher, logger *zap.Logger) contracts.CMSUsecase {
	return &cmsUsecase{
		CMSClient:      cmsClient,
		AuditPublisher: auditPublisher,
		Log:            logger,
	}
}

func (uc *cmsUsecase) ListCMSContents(ctx context.Context, request *requests.ListCMSContents) ([]responses.CMSContent, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return uc.CMSClient.ListCMSContents(ctx, *request)
}

func (uc *cmsUsecase) GetCMSContent(ctx context.Context, id string) (*responses.CMSContent, error) {
	if err := utils.ValidateUrlParamID(id); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	return uc.CMSClient.GetCMSContent(ctx, id)
}

func (uc *cmsUsecase) CreateCMSContent(ctx context.Context, request *requests.CreateCMSContent) (*responses.CMSContent, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("cmsUsecase.CreateCMSContent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingContentTypeKey, request.ContentType),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	content, err := normalizeContent(request.Content)
	if err != nil {
		uc.Log.Error("cmsUsecase.CreateCMSContent error normalizing content",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	request.Content = content

	created, err := uc.CMSClient.CreateCMSContent(ctx, *request)
	if err != nil {
		uc.Log.Error("cmsUsecase.CreateCMSContent error from superadmin API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.AuditPublisher.Publish(ctx, utils.NewAuditEvent(ctx, constvars.AuditEventCMSContentCreated, created.ID, map[string]any{
		"contentType": request.ContentType,
	}))
	uc.Log.Info("cmsUsecase.CreateCMSContent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, created.ID),
	)
	return created, nil
}

func (uc *cmsUsecase) UpdateCMSContent(ctx context.Context, id string, request *requests.UpdateCMSContent) (*responses.CMSContent, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("cmsUsecase.UpdateCMSContent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	if err := utils.ValidateUrlParamID(id); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	if len(request.Content) > 0 {
		content, err := normalizeContent(request.Content)
		if err != nil {
			return nil, err
		}
		request.Content = content
	}

	updated, err := uc.CMSClient.UpdateCMSContent(ctx, id, *request)
	if err != nil {
		uc.Log.Error("cmsUsecase.UpdateCMSContent error from superadmin API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.AuditPublisher.Publish(ctx, utils.NewAuditEvent(ctx, constvars.AuditEventCMSContentUpdated, id, map[string]any{
		"contentType": updated.ContentType,
	}))
	return updated, nil
}

func (uc *cmsUsecase) DeleteCMSContent(ctx context.Context, id string) error {
	if err := utils.ValidateUrlParamID(id); err != nil {
		return exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}

	if err := uc.CMSClient.DeleteCMSContent(ctx, id); err != nil {
		uc.Log.Error("cmsUsecase.DeleteCMSContent error from superadmin API",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return err
	}

	uc.AuditPublisher.Publish(ctx, utils.NewAuditEvent(ctx, constvars.AuditEventCMSContentDeleted, id, nil))
	return nil
}

func normalizeContent(content []byte) ([]byte, error) {
	normalized, err := utils.NormalizeCMSContent(content)
	if errors.Is(err, utils.ErrContentNotArray) {
		return nil, exceptions.ErrCMSContentNotArray(err)
	}
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return normalized, nil
}
