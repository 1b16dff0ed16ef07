package requests

import "github.com/goccy/go-json"

// WizardValues carries the raw values of one wizard step. Step is checked
// against the wizard's current step before the values are decoded.
type WizardValues struct {
	Step   int             `json:"step" validate:"required,min=1,max=5"`
	Values json.RawMessage `json:"values" validate:"required"`
}

type AdvanceWizard struct {
	Step   int             `json:"step,omitempty" validate:"omitempty,min=1,max=5"`
	Values json.RawMessage `json:"values,omitempty"`
}
