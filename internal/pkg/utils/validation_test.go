package utils

import (
	"mime/multipart"
	"testing"

	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStructCustomTags(t *testing.T) {
	t.Run("Booking status", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(requests.UpdateBookingStatus{Status: "confirmed"}))

		err := ValidateStruct(requests.UpdateBookingStatus{Status: "archived"})
		require.Error(t, err)
		assert.Equal(t, "status must be one of [pending confirmed completed cancelled]", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Cancel reason length", func(t *testing.T) {
		reason := make([]byte, 501)
		for i := range reason {
			reason[i] = 'a'
		}
		err := ValidateStruct(requests.CancelBooking{Reason: string(reason)})
		require.Error(t, err)
		assert.Equal(t, "reason maximum at 500 characters long", exceptions.FormatFirstValidationError(err))
	})

	t.Run("CMS content type", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(requests.CreateCMSContent{ContentType: "pregnancy_care_qa", Content: []byte(`[]`)}))
		assert.Error(t, ValidateStruct(requests.CreateCMSContent{ContentType: "homepage", Content: []byte(`[]`)}))
	})

	t.Run("Service type", func(t *testing.T) {
		valid := requests.CreateService{ServiceID: "svc-1", ServiceType: "lab_test", Name: "CBC", Price: 10}
		assert.NoError(t, ValidateStruct(valid))

		valid.ServiceType = "spa"
		assert.Error(t, ValidateStruct(valid))
	})

	t.Run("Bulk update needs one item", func(t *testing.T) {
		assert.Error(t, ValidateStruct(requests.BulkUpdateServices{}))
		assert.NoError(t, ValidateStruct(requests.BulkUpdateServices{Updates: []requests.ServicePriceUpdate{{ServiceID: "svc-1", Price: 5}}}))
	})

	t.Run("Organization logo", func(t *testing.T) {
		logo := func(value string) requests.UpdateOrganization {
			return requests.UpdateOrganization{Logo: &value}
		}
		assert.NoError(t, ValidateStruct(logo("https://cdn.example.com/logo.png")))
		assert.NoError(t, ValidateStruct(logo("data:image/webp;base64,UklGRg==")))
		assert.Error(t, ValidateStruct(logo("javascript:alert(1)")))
		assert.Error(t, ValidateStruct(logo("ftp://files.example.com/logo.png")))
		assert.Error(t, ValidateStruct(logo("/relative/logo.png")))
	})

	t.Run("Negative price", func(t *testing.T) {
		err := ValidateStruct(requests.ServicePriceUpdate{ServiceID: "svc-1", Price: -1})
		require.Error(t, err)
		assert.Equal(t, "price must be greater than or equal to 0", exceptions.FormatFirstValidationError(err))
	})
}

func TestValidateImage(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	t.Run("Accepts png", func(t *testing.T) {
		contentType, err := ValidateImage(&multipart.FileHeader{Filename: "logo.PNG", Size: 1024}, png, 2)
		require.NoError(t, err)
		assert.Equal(t, "image/png", contentType)
	})

	t.Run("Too large", func(t *testing.T) {
		_, err := ValidateImage(&multipart.FileHeader{Filename: "logo.png", Size: 3 * 1024 * 1024}, png, 2)
		assert.Error(t, err)
	})

	t.Run("Wrong extension", func(t *testing.T) {
		_, err := ValidateImage(&multipart.FileHeader{Filename: "logo.gif", Size: 10}, png, 2)
		assert.Error(t, err)
	})

	t.Run("Content disagrees with extension", func(t *testing.T) {
		_, err := ValidateImage(&multipart.FileHeader{Filename: "logo.jpg", Size: 10}, png, 2)
		assert.Error(t, err)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := ValidateImage(nil, nil, 2)
		assert.Error(t, err)
	})
}

func TestValidateIDs(t *testing.T) {
	assert.NoError(t, ValidateUrlParamID("65f0c0ffee1234567890abcd"))
	assert.Error(t, ValidateUrlParamID(""))
	assert.Error(t, ValidateUrlParamID("../etc/passwd"))

	assert.NoError(t, ValidateWizardID("0b6e4a1e-5d43-4f1b-9a8e-3f3b7f3f1c2d"))
	assert.Error(t, ValidateWizardID("wizard-1"))
}
