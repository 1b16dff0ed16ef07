package wizard

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FailureKind string

const (
	FailureRequired FailureKind = "required"
	FailureLength   FailureKind = "length"
	FailureFormat   FailureKind = "format"
	FailureRange    FailureKind = "range"
	FailureMismatch FailureKind = "mismatch"
)

type FieldResult struct {
	Field   string      `json:"field"`
	Valid   bool        `json:"valid"`
	Kind    FailureKind `json:"kind,omitempty"`
	Message string      `json:"message,omitempty"`
}

type ValidationResult struct {
	Step   StepID        `json:"step"`
	Fields []FieldResult `json:"fields"`
}

func (r ValidationResult) Valid() bool {
	for _, field := range r.Fields {
		if !field.Valid {
			return false
		}
	}
	return true
}

// Errors maps every failing field to its message.
func (r ValidationResult) Errors() map[string]string {
	failures := make(map[string]string)
	for _, field := range r.Fields {
		if !field.Valid {
			failures[field.Field] = field.Message
		}
	}
	return failures
}

func (r ValidationResult) Field(name string) (FieldResult, bool) {
	for _, field := range r.Fields {
		if field.Field == name {
			return field, true
		}
	}
	return FieldResult{}, false
}

var organizationIDPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("organization_id", validateOrganizationID)
	validate.RegisterValidation("logo", func(fl validator.FieldLevel) bool {
		return IsLogoReference(fl.Field().String())
	})
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validateOrganizationID(fl validator.FieldLevel) bool {
	return organizationIDPattern.MatchString(fl.Field().String())
}

var fieldLabels = map[string]string{
	FieldOrganizationID:  "Organization ID",
	FieldName:            "Organization name",
	FieldLogo:            "Logo",
	FieldEmail:           "Email",
	FieldPhoneNumber:     "Phone number",
	FieldStreet:          "Street address",
	FieldCity:            "City",
	FieldState:           "State",
	FieldCountry:         "Country",
	FieldZipCode:         "ZIP code",
	FieldMaxUsers:        "Maximum users",
	FieldMaxDoctors:      "Maximum doctors",
	FieldPassword:        "Password",
	FieldConfirmPassword: "Confirm password",
}

// fieldMessages is keyed by field and then by the failing validator tag.
var fieldMessages = map[string]map[string]string{
	FieldOrganizationID: {
		"min":             "Organization ID must be at least 3 characters",
		"max":             "Organization ID must be less than 50 characters",
		"organization_id": "Organization ID can only contain lowercase letters, numbers, and hyphens",
	},
	FieldName: {
		"min": "Organization name must be at least 2 characters",
		"max": "Organization name must be less than 100 characters",
	},
	FieldLogo: {
		"logo": "Logo must be a valid URL",
	},
	FieldEmail: {
		"email": "Please enter a valid email address",
	},
	FieldPhoneNumber: {
		"min": "Phone number must be at least 10 characters",
		"max": "Phone number must be less than 20 characters",
	},
	FieldStreet:     {"min": "Street address is required"},
	FieldCity:       {"min": "City is required"},
	FieldState:      {"min": "State is required"},
	FieldCountry:    {"min": "Country is required"},
	FieldZipCode:    {"min": "ZIP code is required"},
	FieldMaxUsers:   {"min": "Must have at least 1 user"},
	FieldMaxDoctors: {"min": "Must have at least 1 doctor"},
	FieldPassword: {
		"min": "Password must be at least 6 characters",
		"max": "Password must be less than 50 characters",
	},
	FieldConfirmPassword: {
		"eqfield": "passwords don't match",
	},
}

// Validate runs the rules of the step that owns values and reports one
// result per owned field, in the step's field order.
func Validate(values StepValues) ValidationResult {
	def, _ := values.Step().Definition()
	result := ValidationResult{Step: def.ID, Fields: make([]FieldResult, 0, len(def.Fields))}

	failures := make(map[string]validator.FieldError)
	var validationErrors validator.ValidationErrors
	if err := validate.Struct(values); err != nil {
		if !errors.As(err, &validationErrors) {
			for _, field := range def.Fields {
				result.Fields = append(result.Fields, FieldResult{Field: field, Kind: FailureFormat, Message: fieldLabel(field) + " is invalid"})
			}
			return result
		}
		for _, fieldErr := range validationErrors {
			if _, seen := failures[fieldErr.Field()]; !seen {
				failures[fieldErr.Field()] = fieldErr
			}
		}
	}

	for _, field := range def.Fields {
		fieldErr, failed := failures[field]
		if !failed {
			result.Fields = append(result.Fields, FieldResult{Field: field, Valid: true})
			continue
		}
		result.Fields = append(result.Fields, FieldResult{
			Field:   field,
			Kind:    failureKind(fieldErr),
			Message: failureMessage(field, fieldErr),
		})
	}
	return result
}

func failureKind(fieldErr validator.FieldError) FailureKind {
	switch fieldErr.Tag() {
	case "required":
		return FailureRequired
	case "min", "max", "len":
		if fieldErr.Kind() == reflect.String {
			return FailureLength
		}
		return FailureRange
	case "eqfield":
		return FailureMismatch
	}
	return FailureFormat
}

func failureMessage(field string, fieldErr validator.FieldError) string {
	if fieldErr.Tag() == "required" {
		return fieldLabel(field) + " is required"
	}
	if message, ok := fieldMessages[field][fieldErr.Tag()]; ok {
		return message
	}
	return fmt.Sprintf("%s is invalid", fieldLabel(field))
}

func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}
