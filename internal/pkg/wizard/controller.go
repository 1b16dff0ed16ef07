package wizard

import (
	"context"
	"fmt"
	"superadmin-service/internal/pkg/dto/requests"
	"sync"
)

type State string

const (
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateSubmitted  State = "submitted"
	StateFailed     State = "failed"
)

func (s State) valid() bool {
	switch s {
	case StateEditing, StateSubmitting, StateSubmitted, StateFailed:
		return true
	}
	return false
}

// SubmitHook runs once the wizard has entered the submitting state and before
// the gateway is called. An error aborts the submission.
type SubmitHook func(ctx context.Context, snapshot Snapshot) error

type Option func(*Controller)

func WithSubmitHook(hook SubmitHook) Option {
	return func(c *Controller) {
		c.submitHook = hook
	}
}

// Controller owns the step pointer and is the only writer of the draft.
// It is safe for concurrent use; the gateway call runs without the lock held.
type Controller struct {
	mu         sync.Mutex
	gateway    Gateway
	submitHook SubmitHook

	current         StepID
	state           State
	draft           Draft
	backing         Draft
	lastResult      *ValidationResult
	submissionError string
	createdID       string
}

func NewController(gateway Gateway, opts ...Option) *Controller {
	c := &Controller{
		gateway: gateway,
		current: FirstStep,
		state:   StateEditing,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Step() StepID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.clone()
}

// SubmissionError returns the message of the last failed submission.
func (c *Controller) SubmissionError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submissionError
}

func (c *Controller) CreatedID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.createdID
}

func (c *Controller) LastResult() (ValidationResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastResult == nil {
		return ValidationResult{}, false
	}
	return *c.lastResult, true
}

// Values returns what the given step currently shows: unsaved backing values
// first, then what the draft holds, then the step defaults.
func (c *Controller) Values(step StepID) StepValues {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.valuesLocked(step)
}

func (c *Controller) valuesLocked(step StepID) StepValues {
	if values, ok := c.backing.Values(step); ok {
		return values
	}
	if values, ok := c.draft.Values(step); ok {
		return values
	}
	return DefaultValues(step)
}

// SetValues replaces the backing values of the current step.
func (c *Controller) SetValues(values StepValues) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkMutableLocked(); err != nil {
		return err
	}
	if values == nil || values.Step() != c.current {
		got := StepID(0)
		if values != nil {
			got = values.Step()
		}
		return &StepMismatchError{Current: c.current, Got: got}
	}

	c.backing.Merge(values)
	c.lastResult = nil
	if c.state == StateFailed {
		c.state = StateEditing
	}
	return nil
}

// ValidateCurrentStep checks the current step's values and records the result.
func (c *Controller) ValidateCurrentStep() (ValidationResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkMutableLocked(); err != nil {
		return ValidationResult{}, err
	}
	result := Validate(c.valuesLocked(c.current))
	c.lastResult = &result
	return result, nil
}

// Advance validates the current step and, when it passes, merges it into the
// draft and moves forward. On the last step it submits the draft instead.
func (c *Controller) Advance(ctx context.Context) error {
	c.mu.Lock()

	if err := c.checkMutableLocked(); err != nil {
		c.mu.Unlock()
		return err
	}

	values := c.valuesLocked(c.current)
	result := Validate(values)
	c.lastResult = &result
	if !result.Valid() {
		c.mu.Unlock()
		return &FieldValidationError{Result: result}
	}
	c.draft.Merge(values)

	if c.current < LastStep {
		c.current++
		c.lastResult = nil
		if c.state == StateFailed {
			c.state = StateEditing
		}
		c.mu.Unlock()
		return nil
	}

	return c.submitLocked(ctx)
}

// submitLocked is entered with the lock held and releases it.
func (c *Controller) submitLocked(ctx context.Context) error {
	for _, def := range stepDefinitions {
		values, ok := c.draft.Values(def.ID)
		if !ok {
			c.current = def.ID
			c.lastResult = nil
			c.state = StateEditing
			c.mu.Unlock()
			return fmt.Errorf("%w: %s", ErrIncompleteDraft, def.Title)
		}
		result := Validate(values)
		if !result.Valid() {
			c.current = def.ID
			c.lastResult = &result
			c.state = StateEditing
			c.mu.Unlock()
			return &FieldValidationError{Result: result}
		}
	}

	request, err := BuildCreateOrganizationRequest(c.draft)
	if err != nil {
		c.state = StateFailed
		c.submissionError = DefaultSubmissionErrorMessage
		c.mu.Unlock()
		return &SubmissionError{Message: DefaultSubmissionErrorMessage, Err: err}
	}

	previous := c.state
	previousMessage := c.submissionError
	c.state = StateSubmitting
	c.submissionError = ""
	snapshot := c.snapshotLocked()
	hook := c.submitHook
	c.mu.Unlock()

	if hook != nil {
		if err := hook(ctx, snapshot); err != nil {
			c.mu.Lock()
			c.state = previous
			c.submissionError = previousMessage
			c.mu.Unlock()
			return err
		}
	}

	created, err := c.create(ctx, request)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateFailed
		c.submissionError = SubmissionMessage(err)
		return &SubmissionError{Message: c.submissionError, Err: err}
	}

	c.state = StateSubmitted
	c.createdID = created.ID
	c.draft = Draft{}
	c.backing = Draft{}
	c.lastResult = nil
	return nil
}

func (c *Controller) create(ctx context.Context, request requests.CreateOrganization) (created *CreatedOrganization, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			created = nil
			err = fmt.Errorf("create organization panicked: %v", recovered)
		}
	}()

	if c.gateway == nil {
		return nil, fmt.Errorf("wizard has no gateway")
	}
	created, err = c.gateway.CreateOrganization(ctx, request)
	if err == nil && created == nil {
		created = &CreatedOrganization{}
	}
	return created, err
}

// Retreat moves one step back. Entered values and the draft are kept.
func (c *Controller) Retreat() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkMutableLocked(); err != nil {
		return err
	}
	if c.current > FirstStep {
		c.current--
	}
	c.lastResult = nil
	if c.state == StateFailed {
		c.state = StateEditing
	}
	return nil
}

func (c *Controller) checkMutableLocked() error {
	switch c.state {
	case StateSubmitting:
		return ErrSubmissionInProgress
	case StateSubmitted:
		return ErrAlreadySubmitted
	}
	return nil
}
