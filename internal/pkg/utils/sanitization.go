package utils

import (
	"strings"
	"superadmin-service/internal/pkg/dto/requests"

	"github.com/microcosm-cc/bluemonday"
)

var contentPolicy = bluemonday.UGCPolicy()

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeUpdateBookingStatusRequest(input *requests.UpdateBookingStatus) {
	input.Status = strings.TrimSpace(strings.ToLower(input.Status))
	input.Reason = strings.TrimSpace(input.Reason)
}

func SanitizeCancelBookingRequest(input *requests.CancelBooking) {
	input.Reason = strings.TrimSpace(input.Reason)
}

func SanitizeUpdateOrganizationRequest(input *requests.UpdateOrganization) {
	trimOptional(input.Name)
	trimOptional(input.Logo)
	trimOptional(input.PhoneNumber)
	if input.Address != nil {
		input.Address.Street = strings.TrimSpace(input.Address.Street)
		input.Address.City = strings.TrimSpace(input.Address.City)
		input.Address.State = strings.TrimSpace(input.Address.State)
		input.Address.Country = strings.TrimSpace(input.Address.Country)
		input.Address.ZipCode = strings.TrimSpace(input.Address.ZipCode)
	}
}

func SanitizeCreateServicePackageRequest(input *requests.CreateServicePackage) {
	input.PackageID = strings.TrimSpace(input.PackageID)
	input.ServiceType = strings.TrimSpace(input.ServiceType)
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.Category = strings.TrimSpace(input.Category)
	input.SubCategory = strings.TrimSpace(input.SubCategory)
	input.TestsIncluded = cleanWhiteSpaceFromEachStringOfAnArray(input.TestsIncluded)
	input.ServicesIncluded = cleanWhiteSpaceFromEachStringOfAnArray(input.ServicesIncluded)
	input.PreparationInstructions = cleanWhiteSpaceFromEachStringOfAnArray(input.PreparationInstructions)
	input.Tags = cleanWhiteSpaceFromEachStringOfAnArray(input.Tags)
}

func SanitizeCreateServiceRequest(input *requests.CreateService) {
	input.ServiceID = strings.TrimSpace(input.ServiceID)
	input.ServiceType = strings.TrimSpace(input.ServiceType)
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
}

// SanitizeContentValue strips unsafe markup from every string found in a
// decoded JSON value, keeping its structure.
func SanitizeContentValue(value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		return contentPolicy.Sanitize(v)
	case []interface{}:
		for i := range v {
			v[i] = SanitizeContentValue(v[i])
		}
		return v
	case map[string]interface{}:
		for key, item := range v {
			v[key] = SanitizeContentValue(item)
		}
		return v
	}
	return value
}

func trimOptional(value *string) {
	if value != nil {
		*value = strings.TrimSpace(*value)
	}
}

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	if input == nil {
		return nil
	}
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			sanitizedArray = append(sanitizedArray, trimmed)
		}
	}
	return sanitizedArray
}
