package utils

import (
	"reflect"
	"slices"
	"strings"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/wizard"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("booking_status", validateBookingStatus)
	validate.RegisterValidation("service_type", validateServiceType)
	validate.RegisterValidation("content_type", validateContentType)
	validate.RegisterValidation("logo", validateLogo)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	return slices.Contains(constvars.BookingStatuses, fl.Field().String())
}

func validateServiceType(fl validator.FieldLevel) bool {
	return slices.Contains(constvars.ServiceTypes, fl.Field().String())
}

func validateContentType(fl validator.FieldLevel) bool {
	return slices.Contains(constvars.CMSContentTypes, fl.Field().String())
}

func validateLogo(fl validator.FieldLevel) bool {
	return wizard.IsLogoReference(fl.Field().String())
}
