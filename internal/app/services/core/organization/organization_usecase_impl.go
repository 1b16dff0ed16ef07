package organization

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"superadmin-service/internal/app/config"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// logoSniffSize is how much of an upload http.DetectContentType looks at.
const logoSniffSize = 512

type organizationUsecase struct {
	OrganizationClient contracts.SuperadminOrganizationClient
	Storage            contracts.Storage
	AuditPublisher     contracts.AuditPublisher
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
	now                func() time.Time
}

func NewOrganizationUsecase(
	organizationClient contracts.SuperadminOrganizationClient,
	storage contracts.Storage,
	auditPublisher contracts.AuditPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.OrganizationUsecase {
	return &organizationUsecase{
		OrganizationClient: organizationClient,
		Storage:            storage,
		AuditPublisher:     auditPublisher,
		InternalConfig:     internalConfig,
		Log:                logger,
		now:                time.Now,
	}
}

func (uc *organizationUsecase) ListOrganizations(ctx context.Context, request *requests.ListOrganizations) (*responses.OrganizationList, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	list, err := uc.OrganizationClient.ListOrganizations(ctx, *request)
	if err != nil {
		uc.Log.Error("organizationUsecase.ListOrganizations error from superadmin API",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	if list.Organizations == nil {
		list.Organizations = []responses.Organization{}
	}
	return list, nil
}

func (uc *organizationUsecase) GetOrganizationStats(ctx context.Context) (json.RawMessage, error) {
	return uc.OrganizationClient.GetOrganizationStats(ctx)
}

func (uc *organizationUsecase) GetOrganization(ctx context.Context, id string) (*responses.Organization, error) {
	if err := utils.ValidateUrlParamID(id); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	return uc.OrganizationClient.GetOrganization(ctx, id)
}

func (uc *organizationUsecase) UpdateOrganization(ctx context.Context, id string, request *requests.UpdateOrganization) (*responses.Organization, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("organizationUsecase.UpdateOrganization called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	if err := utils.ValidateUrlParamID(id); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	utils.SanitizeUpdateOrganizationRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("organizationUsecase.UpdateOrganization error validating request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	organization, err := uc.OrganizationClient.UpdateOrganization(ctx, id, *request)
	if err != nil {
		uc.Log.Error("organizationUsecase.UpdateOrganization error from superadmin API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.AuditPublisher.Publish(ctx, utils.NewAuditEvent(ctx, constvars.AuditEventOrganizationUpdated, id, nil))
	uc.Log.Info("organizationUsecase.UpdateOrganization succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, id),
	)
	return organization, nil
}

func (uc *organizationUsecase) DeleteOrganization(ctx context.Context, id string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("organizationUsecase.DeleteOrganization called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	if err := utils.ValidateUrlParamID(id); err != nil {
		return exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	if err := uc.OrganizationClient.DeleteOrganization(ctx, id); err != nil {
		uc.Log.Error("organizationUsecase.DeleteOrganization error from superadmin API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.AuditPublisher.Publish(ctx, utils.NewAuditEvent(ctx, constvars.AuditEventOrganizationDeleted, id, nil))
	return nil
}

func (uc *organizationUsecase) ToggleOrganizationStatus(ctx context.Context, id string) (*responses.Organization, error) {
	if err := utils.ValidateUrlParamID(id); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}

	organization, err := uc.OrganizationClient.ToggleOrganizationStatus(ctx, id)
	if err != nil {
		uc.Log.Error("organizationUsecase.ToggleOrganizationStatus error from superadmin API",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	uc.AuditPublisher.Publish(ctx, utils.NewAuditEvent(ctx, constvars.AuditEventOrganizationStatusToggled, id, map[string]any{
		"isActive": organization.IsActive,
	}))
	return organization, nil
}

// UploadLogo stores the logo in object storage and hands back a presigned
// URL the basic information step accepts as its logo.
func (uc *organizationUsecase) UploadLogo(ctx context.Context, request *requests.UploadLogo) (*responses.UploadedLogo, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("organizationUsecase.UploadLogo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.File == nil || request.Header == nil {
		return nil, exceptions.ErrImageValidation(nil)
	}

	sniffed := make([]byte, logoSniffSize)
	n, err := io.ReadFull(request.File, sniffed)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, exceptions.ErrImageValidation(err)
	}
	sniffed = sniffed[:n]

	contentType, err := utils.ValidateImage(request.Header, sniffed, uc.InternalConfig.Minio.LogoMaxUploadSizeInMB)
	if err != nil {
		uc.Log.Error("organizationUsecase.UploadLogo error validating image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrImageValidation(err)
	}

	bucketName := uc.InternalConfig.Minio.BucketName
	extension := strings.ToLower(filepath.Ext(request.Header.Filename))
	objectName := constvars.LogoObjectPrefix + uuid.NewString() + extension
	body := io.MultiReader(bytes.NewReader(sniffed), request.File)

	objectName, err = uc.Storage.PutObject(ctx, bucketName, contracts.StorageObject{
		Name:        objectName,
		ContentType: contentType,
		Size:        request.Header.Size,
		Body:        body,
	})
	if err != nil {
		uc.Log.Error("organizationUsecase.UploadLogo error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, bucketName),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlExpiryTimeInHours) * time.Hour
	url, err := uc.Storage.PresignGet(ctx, bucketName, objectName, expiry)
	if err != nil {
		uc.Log.Error("organizationUsecase.UploadLogo error presigning object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	uc.AuditPublisher.Publish(ctx, utils.NewAuditEvent(ctx, constvars.AuditEventLogoUploaded, objectName, map[string]any{
		"size":        request.Header.Size,
		"contentType": contentType,
	}))

	uc.Log.Info("organizationUsecase.UploadLogo succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
		zap.Int64(constvars.LoggingObjectSizeKey, request.Header.Size),
	)
	return &responses.UploadedLogo{
		ObjectName: objectName,
		URL:        url,
		ExpiresAt:  uc.now().Add(expiry).UTC(),
	}, nil
}
