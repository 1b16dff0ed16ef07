package wizard

import (
	"errors"
	"fmt"
	"strings"
)

const DefaultSubmissionErrorMessage = "Failed to create organization. Please try again."

var (
	ErrSubmissionInProgress = errors.New("organization submission is in progress")
	ErrAlreadySubmitted     = errors.New("organization was already submitted")
	ErrIncompleteDraft      = errors.New("draft is missing step values")
)

// StepMismatchError reports values sent for a step other than the current one.
type StepMismatchError struct {
	Current StepID
	Got     StepID
}

func (e *StepMismatchError) Error() string {
	return fmt.Sprintf("values for step %d sent while wizard is at step %d", int(e.Got), int(e.Current))
}

// FieldValidationError blocks a step from advancing.
type FieldValidationError struct {
	Result ValidationResult
}

func (e *FieldValidationError) Error() string {
	var messages []string
	for _, field := range e.Result.Fields {
		if !field.Valid {
			messages = append(messages, field.Field+": "+field.Message)
		}
	}
	return fmt.Sprintf("%s is invalid: %s", e.Result.Step, strings.Join(messages, ", "))
}

// RejectedError is returned by a Gateway when the API refused the create
// call with a message of its own.
type RejectedError struct {
	Message string
	Err     error
}

func (e *RejectedError) Error() string {
	return e.Message
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}

// SubmissionError is what a failed submission leaves the wizard with.
// Message is the text shown to the user.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// SubmissionMessage picks the user facing message for a failed submission.
func SubmissionMessage(err error) string {
	var rejected *RejectedError
	if errors.As(err, &rejected) && strings.TrimSpace(rejected.Message) != "" {
		return rejected.Message
	}
	return DefaultSubmissionErrorMessage
}
