package wizard

import "fmt"

// Snapshot is the complete state of a controller, suitable for storing
// between requests.
type Snapshot struct {
	Step            StepID            `json:"step"`
	State           State             `json:"state"`
	Draft           Draft             `json:"draft"`
	Backing         Draft             `json:"backing"`
	LastResult      *ValidationResult `json:"lastResult,omitempty"`
	SubmissionError string            `json:"submissionError,omitempty"`
	CreatedID       string            `json:"createdId,omitempty"`
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	snapshot := Snapshot{
		Step:            c.current,
		State:           c.state,
		Draft:           c.draft.clone(),
		Backing:         c.backing.clone(),
		SubmissionError: c.submissionError,
		CreatedID:       c.createdID,
	}
	if c.lastResult != nil {
		result := *c.lastResult
		result.Fields = append([]FieldResult(nil), c.lastResult.Fields...)
		snapshot.LastResult = &result
	}
	return snapshot
}

// Restore rebuilds a controller from a snapshot.
func Restore(gateway Gateway, snapshot Snapshot, opts ...Option) (*Controller, error) {
	if !snapshot.Step.Valid() {
		return nil, fmt.Errorf("snapshot step %d out of range", int(snapshot.Step))
	}
	if !snapshot.State.valid() {
		return nil, fmt.Errorf("snapshot state %q unknown", snapshot.State)
	}

	c := NewController(gateway, opts...)
	c.current = snapshot.Step
	c.state = snapshot.State
	c.draft = snapshot.Draft.clone()
	c.backing = snapshot.Backing.clone()
	c.submissionError = snapshot.SubmissionError
	c.createdID = snapshot.CreatedID
	if snapshot.LastResult != nil {
		result := *snapshot.LastResult
		c.lastResult = &result
	}
	return c, nil
}
