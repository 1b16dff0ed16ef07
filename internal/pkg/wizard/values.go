package wizard

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

const (
	FieldOrganizationID  = "organizationId"
	FieldName            = "name"
	FieldLogo            = "logo"
	FieldEmail           = "email"
	FieldPhoneNumber     = "phoneNumber"
	FieldStreet          = "street"
	FieldCity            = "city"
	FieldState           = "state"
	FieldCountry         = "country"
	FieldZipCode         = "zipCode"
	FieldMaxUsers        = "maxUsers"
	FieldMaxDoctors      = "maxDoctors"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

const (
	DefaultMaxUsers   = 10
	DefaultMaxDoctors = 5
)

// StepValues is implemented only by the five step records of this package.
type StepValues interface {
	Step() StepID
	isStepValues()
}

type BasicInformation struct {
	OrganizationID string `json:"organizationId" validate:"required,min=3,max=50,organization_id"`
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Logo           string `json:"logo,omitempty" validate:"omitempty,logo"`
}

type ContactDetails struct {
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=10,max=20"`
}

type Address struct {
	Street  string `json:"street" validate:"required,min=5"`
	City    string `json:"city" validate:"required,min=2"`
	State   string `json:"state" validate:"required,min=2"`
	Country string `json:"country" validate:"required,min=2"`
	ZipCode string `json:"zipCode" validate:"required,min=3"`
}

// Capacity limits have no "required" rule: a zero limit is a range failure.
type Capacity struct {
	MaxUsers   int `json:"maxUsers" validate:"min=1"`
	MaxDoctors int `json:"maxDoctors" validate:"min=1"`
}

type Security struct {
	Password        string `json:"password" validate:"required,min=6,max=50"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func (BasicInformation) Step() StepID { return StepBasicInformation }
func (ContactDetails) Step() StepID   { return StepContactDetails }
func (Address) Step() StepID          { return StepAddress }
func (Capacity) Step() StepID         { return StepCapacity }
func (Security) Step() StepID         { return StepSecurity }

func (BasicInformation) isStepValues() {}
func (ContactDetails) isStepValues()   {}
func (Address) isStepValues()          {}
func (Capacity) isStepValues()         {}
func (Security) isStepValues()         {}

// DefaultValues returns what a step shows before anything was entered.
func DefaultValues(step StepID) StepValues {
	switch step {
	case StepBasicInformation:
		return BasicInformation{}
	case StepContactDetails:
		return ContactDetails{}
	case StepAddress:
		return Address{}
	case StepCapacity:
		return Capacity{MaxUsers: DefaultMaxUsers, MaxDoctors: DefaultMaxDoctors}
	case StepSecurity:
		return Security{}
	}
	return nil
}

// DecodeStepValues decodes a JSON object into the record owned by step.
// Unknown fields are rejected so values cannot leak into another step.
func DecodeStepValues(step StepID, data []byte) (StepValues, error) {
	var target StepValues
	switch step {
	case StepBasicInformation:
		v := BasicInformation{}
		if err := decodeStrict(data, &v); err != nil {
			return nil, err
		}
		target = v
	case StepContactDetails:
		v := ContactDetails{}
		if err := decodeStrict(data, &v); err != nil {
			return nil, err
		}
		target = v
	case StepAddress:
		v := Address{}
		if err := decodeStrict(data, &v); err != nil {
			return nil, err
		}
		target = v
	case StepCapacity:
		v := Capacity{MaxUsers: DefaultMaxUsers, MaxDoctors: DefaultMaxDoctors}
		if err := decodeStrict(data, &v); err != nil {
			return nil, err
		}
		target = v
	case StepSecurity:
		v := Security{}
		if err := decodeStrict(data, &v); err != nil {
			return nil, err
		}
		target = v
	default:
		return nil, fmt.Errorf("unknown wizard step %d", int(step))
	}
	return target, nil
}

func decodeStrict(data []byte, target any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("decode %T: %w", target, err)
	}
	return nil
}
