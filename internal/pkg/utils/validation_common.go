package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"superadmin-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

var allowedLogoTypes = map[string]string{
	".png":  constvars.MIMEImagePNG,
	".jpg":  constvars.MIMEImageJPEG,
	".jpeg": constvars.MIMEImageJPEG,
	".webp": constvars.MIMEImageWEBP,
}

var urlParamIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidateImage checks the extension and size of an uploaded logo and
// returns the content type the object should be stored with.
func ValidateImage(fileHeader *multipart.FileHeader, sniffed []byte, maxSizeInMegabytes int64) (string, error) {
	if fileHeader == nil {
		return "", errors.New("file is missing")
	}

	if fileHeader.Size > maxSizeInMegabytes*1024*1024 {
		return "", fmt.Errorf("file size exceeds the maximum limit of %dMB", maxSizeInMegabytes)
	}

	extension := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := allowedLogoTypes[extension]
	if !ok {
		return "", fmt.Errorf("invalid file format %q", extension)
	}

	detected := http.DetectContentType(sniffed)
	if detected != contentType {
		return "", fmt.Errorf("file content %s does not match extension %s", detected, extension)
	}
	return contentType, nil
}

// ValidateUrlParamID accepts the record ids the superadmin API hands out.
func ValidateUrlParamID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}
	if !urlParamIDPattern.MatchString(param) {
		return fmt.Errorf("parameter %q contains unsupported characters", param)
	}
	return nil
}

func ValidateWizardID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}
	_, err := uuid.Parse(param)
	return err
}
