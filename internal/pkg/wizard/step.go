// Package wizard holds the organization creation wizard: the step table,
// the per-field validators, the draft the steps accumulate into and the
// controller that walks a wizard from the first step to submission.
package wizard

import "fmt"

type StepID int

const (
	StepBasicInformation StepID = iota + 1
	StepContactDetails
	StepAddress
	StepCapacity
	StepSecurity
)

const (
	FirstStep  = StepBasicInformation
	LastStep   = StepSecurity
	TotalSteps = int(LastStep)
)

type StepDefinition struct {
	ID          StepID   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
}

var stepDefinitions = []StepDefinition{
	{
		ID:          StepBasicInformation,
		Title:       "Basic Information",
		Description: "Organization ID and name",
		Fields:      []string{FieldOrganizationID, FieldName, FieldLogo},
	},
	{
		ID:          StepContactDetails,
		Title:       "Contact Details",
		Description: "Email and phone number",
		Fields:      []string{FieldEmail, FieldPhoneNumber},
	},
	{
		ID:          StepAddress,
		Title:       "Address",
		Description: "Physical address",
		Fields:      []string{FieldStreet, FieldCity, FieldState, FieldCountry, FieldZipCode},
	},
	{
		ID:          StepCapacity,
		Title:       "Capacity",
		Description: "User and doctor limits",
		Fields:      []string{FieldMaxUsers, FieldMaxDoctors},
	},
	{
		ID:          StepSecurity,
		Title:       "Security",
		Description: "Admin password",
		Fields:      []string{FieldPassword, FieldConfirmPassword},
	},
}

// Steps returns the step table in order.
func Steps() []StepDefinition {
	steps := make([]StepDefinition, len(stepDefinitions))
	for i, def := range stepDefinitions {
		def.Fields = append([]string(nil), def.Fields...)
		steps[i] = def
	}
	return steps
}

func (s StepID) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

func (s StepID) Definition() (StepDefinition, bool) {
	if !s.Valid() {
		return StepDefinition{}, false
	}
	return stepDefinitions[s-1], true
}

func (s StepID) String() string {
	if def, ok := s.Definition(); ok {
		return def.Title
	}
	return fmt.Sprintf("step %d", int(s))
}
