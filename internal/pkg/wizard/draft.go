package wizard

// Draft holds one slot per step. A slot is filled by the first validated
// values of its step and only ever replaced by that step's later values.
type Draft struct {
	BasicInformation *BasicInformation `json:"basicInformation,omitempty"`
	ContactDetails   *ContactDetails   `json:"contactDetails,omitempty"`
	Address          *Address          `json:"address,omitempty"`
	Capacity         *Capacity         `json:"capacity,omitempty"`
	Security         *Security         `json:"security,omitempty"`
}

// Merge stores values in the slot of the step that owns them.
func (d *Draft) Merge(values StepValues) {
	switch v := values.(type) {
	case BasicInformation:
		d.BasicInformation = &v
	case ContactDetails:
		d.ContactDetails = &v
	case Address:
		d.Address = &v
	case Capacity:
		d.Capacity = &v
	case Security:
		d.Security = &v
	}
}

func (d Draft) Values(step StepID) (StepValues, bool) {
	switch step {
	case StepBasicInformation:
		if d.BasicInformation != nil {
			return *d.BasicInformation, true
		}
	case StepContactDetails:
		if d.ContactDetails != nil {
			return *d.ContactDetails, true
		}
	case StepAddress:
		if d.Address != nil {
			return *d.Address, true
		}
	case StepCapacity:
		if d.Capacity != nil {
			return *d.Capacity, true
		}
	case StepSecurity:
		if d.Security != nil {
			return *d.Security, true
		}
	}
	return nil, false
}

func (d Draft) Has(step StepID) bool {
	_, ok := d.Values(step)
	return ok
}

// Keys lists the field names held by the draft in step order.
func (d Draft) Keys() []string {
	var keys []string
	for _, def := range stepDefinitions {
		if d.Has(def.ID) {
			keys = append(keys, def.Fields...)
		}
	}
	return keys
}

func (d Draft) Complete() bool {
	for _, def := range stepDefinitions {
		if !d.Has(def.ID) {
			return false
		}
	}
	return true
}

func (d Draft) clone() Draft {
	var out Draft
	for _, def := range stepDefinitions {
		if values, ok := d.Values(def.ID); ok {
			out.Merge(values)
		}
	}
	return out
}
