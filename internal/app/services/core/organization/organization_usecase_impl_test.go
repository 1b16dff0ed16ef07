package organization

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"strings"
	"superadmin-service/internal/app/config"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/app/services/shared/mocks"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"
	"superadmin-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryFile struct {
	*bytes.Reader
}

func (memoryFile) Close() error { return nil }

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type organizationFixture struct {
	usecase *organizationUsecase
	client  *mocks.SuperadminClient
	storage *mocks.Storage
	audit   *mocks.AuditPublisher
}

func newOrganizationFixture() *organizationFixture {
	f := &organizationFixture{
		client:  new(mocks.SuperadminClient),
		storage: new(mocks.Storage),
		audit:   new(mocks.AuditPublisher),
	}
	cfg := &config.InternalConfig{
		Minio: config.AppMinio{
			BucketName:                    "organization-logos",
			LogoMaxUploadSizeInMB:         2,
			PreSignedUrlExpiryTimeInHours: 168,
		},
	}
	f.usecase = NewOrganizationUsecase(f.client, f.storage, f.audit, cfg, zap.NewNop()).(*organizationUsecase)
	f.usecase.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	return f
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constvars.CONTEXT_ADMIN_ID_KEY, "admin-1")
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func TestOrganizationUsecase_ListOrganizations(t *testing.T) {
	t.Run("Fills an empty list", func(t *testing.T) {
		f := newOrganizationFixture()
		request := requests.ListOrganizations{Page: 1, Limit: 10}
		f.client.On("ListOrganizations", mock.Anything, request).Return(&responses.OrganizationList{}, nil).Once()

		list, err := f.usecase.ListOrganizations(context.Background(), &request)

		require.NoError(t, err)
		assert.NotNil(t, list.Organizations)
	})

	t.Run("Rejects a limit above 100", func(t *testing.T) {
		f := newOrganizationFixture()

		_, err := f.usecase.ListOrganizations(context.Background(), &requests.ListOrganizations{Page: 1, Limit: 101})

		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
		f.client.AssertNotCalled(t, "ListOrganizations", mock.Anything, mock.Anything)
	})
}

func TestOrganizationUsecase_UpdateOrganization(t *testing.T) {
	t.Run("Publishes an audit event after the update", func(t *testing.T) {
		f := newOrganizationFixture()
		name := "  City Care Clinic "
		f.client.On("UpdateOrganization", mock.Anything, "org-1", mock.MatchedBy(func(request requests.UpdateOrganization) bool {
			return request.Name != nil && *request.Name == "City Care Clinic"
		})).Return(&responses.Organization{ID: "org-1", Name: "City Care Clinic"}, nil).Once()
		f.audit.On("Publish", mock.Anything, mock.MatchedBy(func(event requests.AuditEvent) bool {
			return event.Event == constvars.AuditEventOrganizationUpdated && event.ResourceID == "org-1" && event.AdminID == "admin-1"
		})).Once()

		organization, err := f.usecase.UpdateOrganization(adminContext(), "org-1", &requests.UpdateOrganization{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "City Care Clinic", organization.Name)
		f.audit.AssertExpectations(t)
	})

	t.Run("Applies the wizard field rules", func(t *testing.T) {
		f := newOrganizationFixture()
		maxUsers := 0
		phone := "123"

		_, err := f.usecase.UpdateOrganization(adminContext(), "org-1", &requests.UpdateOrganization{MaxUsers: &maxUsers, PhoneNumber: &phone})

		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
		f.client.AssertNotCalled(t, "UpdateOrganization", mock.Anything, mock.Anything, mock.Anything)
		f.audit.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Rejects an id with a path separator", func(t *testing.T) {
		f := newOrganizationFixture()

		_, err := f.usecase.UpdateOrganization(adminContext(), "../org-1", &requests.UpdateOrganization{})

		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
	})
}

func TestOrganizationUsecase_DeleteOrganization(t *testing.T) {
	f := newOrganizationFixture()
	upstream := exceptions.ErrUpstreamResponse(404, constvars.SuperadminPathOrganizations, "")
	f.client.On("DeleteOrganization", mock.Anything, "org-404").Return(upstream).Once()

	err := f.usecase.DeleteOrganization(adminContext(), "org-404")

	assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
	f.audit.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestOrganizationUsecase_UploadLogo(t *testing.T) {
	t.Run("Stores the logo and presigns it", func(t *testing.T) {
		f := newOrganizationFixture()
		content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 600)...)
		header := &multipart.FileHeader{Filename: "Logo.PNG", Size: int64(len(content))}

		var uploaded []byte
		f.storage.On("PutObject", mock.Anything, "organization-logos", mock.MatchedBy(func(object contracts.StorageObject) bool {
			return strings.HasPrefix(object.Name, constvars.LogoObjectPrefix) && strings.HasSuffix(object.Name, ".png") &&
				object.Size == int64(len(content)) && object.ContentType == constvars.MIMEImagePNG
		})).
			Run(func(args mock.Arguments) {
				uploaded, _ = io.ReadAll(args.Get(2).(contracts.StorageObject).Body)
			}).
			Return("logos/fixed.png", nil).Once()
		f.storage.On("PresignGet", mock.Anything, "organization-logos", "logos/fixed.png", 168*time.Hour).
			Return("https://minio.local/organization-logos/logos/fixed.png?X-Amz-Signature=abc", nil).Once()
		f.audit.On("Publish", mock.Anything, mock.MatchedBy(func(event requests.AuditEvent) bool {
			return event.Event == constvars.AuditEventLogoUploaded
		})).Once()

		logo, err := f.usecase.UploadLogo(adminContext(), &requests.UploadLogo{
			File:   memoryFile{bytes.NewReader(content)},
			Header: header,
		})

		require.NoError(t, err)
		assert.Equal(t, "logos/fixed.png", logo.ObjectName)
		assert.Contains(t, logo.URL, "X-Amz-Signature")
		assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), logo.ExpiresAt)
		assert.Equal(t, content, uploaded, "the sniffed prefix must be uploaded too")
	})

	t.Run("Rejects an unsupported extension", func(t *testing.T) {
		f := newOrganizationFixture()
		header := &multipart.FileHeader{Filename: "logo.gif", Size: int64(len(pngHeader))}

		_, err := f.usecase.UploadLogo(adminContext(), &requests.UploadLogo{
			File:   memoryFile{bytes.NewReader(pngHeader)},
			Header: header,
		})

		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
		f.storage.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Rejects content that does not match the extension", func(t *testing.T) {
		f := newOrganizationFixture()
		content := []byte("<html><body>not an image</body></html>")
		header := &multipart.FileHeader{Filename: "logo.png", Size: int64(len(content))}

		_, err := f.usecase.UploadLogo(adminContext(), &requests.UploadLogo{
			File:   memoryFile{bytes.NewReader(content)},
			Header: header,
		})

		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
	})

	t.Run("Rejects files above the size limit", func(t *testing.T) {
		f := newOrganizationFixture()
		header := &multipart.FileHeader{Filename: "logo.png", Size: 3 * 1024 * 1024}

		_, err := f.usecase.UploadLogo(adminContext(), &requests.UploadLogo{
			File:   memoryFile{bytes.NewReader(pngHeader)},
			Header: header,
		})

		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
	})
}
