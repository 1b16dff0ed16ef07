package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/app/services/core/organization_wizard"
	"superadmin-service/internal/pkg/wizard"
)

const (
	actionNext   = "Next"
	actionCreate = "Create organization"
	actionBack   = "Back"
	actionCancel = "Cancel"
	actionRetry  = "Retry"

	cancelledMessage = "Organization creation cancelled"
)

// runOrganizationWizard walks the five wizard steps in the terminal and
// submits the draft through the superadmin API on the last one.
func (a *App) runOrganizationWizard(ctx context.Context, client contracts.SuperadminOrganizationClient) error {
	controller := wizard.NewController(organization_wizard.NewOrganizationGateway(client))

	for {
		if controller.State() == wizard.StateSubmitted {
			a.success(fmt.Sprintf("Organization created (id %s)", controller.CreatedID()))
			return nil
		}

		var (
			action string
			err    error
		)
		if controller.State() == wizard.StateFailed {
			action, err = a.Prompt.Select("Submission failed", []string{actionRetry, actionBack, actionCancel}, actionRetry)
		} else {
			action, err = a.editStep(controller)
		}
		if errors.Is(err, ErrCancelled) {
			a.printf("%s\n", mutedStyle.Render(cancelledMessage))
			return nil
		}
		if err != nil {
			return err
		}

		switch action {
		case actionBack:
			if err := controller.Retreat(); err != nil {
				return err
			}
		case actionCancel:
			confirmed, err := a.Prompt.Confirm("Discard this organization?", false)
			if err != nil && !errors.Is(err, ErrCancelled) {
				return err
			}
			if confirmed || errors.Is(err, ErrCancelled) {
				a.printf("%s\n", mutedStyle.Render(cancelledMessage))
				return nil
			}
		default:
			if err := a.advanceWizard(ctx, controller); err != nil {
				return err
			}
		}
	}
}

// editStep prompts every field of the current step and stores the answers.
func (a *App) editStep(controller *wizard.Controller) (string, error) {
	step := controller.Step()
	def, _ := step.Definition()
	a.printf("\n%s\n%s\n", titleStyle.Render(fmt.Sprintf("Step %d of %d: %s", int(step), wizard.TotalSteps, def.Title)), mutedStyle.Render(def.Description))

	values, err := a.promptStepValues(controller.Values(step))
	if err != nil {
		return "", err
	}
	if err := controller.SetValues(values); err != nil {
		return "", err
	}

	forward := actionNext
	if step == wizard.LastStep {
		forward = actionCreate
	}
	options := []string{forward}
	if step > wizard.FirstStep {
		options = append(options, actionBack)
	}
	options = append(options, actionCancel)
	return a.Prompt.Select("Continue", options, forward)
}

// advanceWizard reports validation and submission failures to the user and
// only returns errors the wizard cannot recover from.
func (a *App) advanceWizard(ctx context.Context, controller *wizard.Controller) error {
	err := controller.Advance(ctx)
	if err == nil {
		return nil
	}

	var (
		fieldErr      *wizard.FieldValidationError
		submissionErr *wizard.SubmissionError
	)
	switch {
	case errors.As(err, &fieldErr):
		for _, field := range fieldErr.Result.Fields {
			if !field.Valid {
				a.failure("  " + field.Message)
			}
		}
		return nil
	case errors.As(err, &submissionErr):
		a.failure(submissionErr.Message)
		return nil
	case errors.Is(err, wizard.ErrIncompleteDraft):
		a.failure(err.Error())
		return nil
	}
	return err
}

func (a *App) promptStepValues(current wizard.StepValues) (wizard.StepValues, error) {
	var err error
	ask := func(message, defaultValue string) string {
		if err != nil {
			return defaultValue
		}
		var answer string
		answer, err = a.Prompt.Input(message, defaultValue, nil)
		return answer
	}
	askInt := func(message string, defaultValue int) int {
		if err != nil {
			return defaultValue
		}
		var answer string
		answer, err = a.Prompt.Input(message, strconv.Itoa(defaultValue), validateInt)
		if err != nil {
			return defaultValue
		}
		value, convErr := strconv.Atoi(answer)
		if convErr != nil {
			err = convErr
		}
		return value
	}
	secret := func(message string) string {
		if err != nil {
			return ""
		}
		var answer string
		answer, err = a.Prompt.Password(message)
		return answer
	}

	var values wizard.StepValues
	switch v := current.(type) {
	case wizard.BasicInformation:
		values = wizard.BasicInformation{
			OrganizationID: ask("Organization ID", v.OrganizationID),
			Name:           ask("Organization name", v.Name),
			Logo:           ask("Logo URL (optional)", v.Logo),
		}
	case wizard.ContactDetails:
		values = wizard.ContactDetails{
			Email:       ask("Email", v.Email),
			PhoneNumber: ask("Phone number", v.PhoneNumber),
		}
	case wizard.Address:
		values = wizard.Address{
			Street:  ask("Street address", v.Street),
			City:    ask("City", v.City),
			State:   ask("State", v.State),
			Country: ask("Country", v.Country),
			ZipCode: ask("ZIP code", v.ZipCode),
		}
	case wizard.Capacity:
		values = wizard.Capacity{
			MaxUsers:   askInt("Maximum users", v.MaxUsers),
			MaxDoctors: askInt("Maximum doctors", v.MaxDoctors),
		}
	case wizard.Security:
		values = wizard.Security{
			Password:        secret("Admin password"),
			ConfirmPassword: secret("Confirm password"),
		}
	default:
		return nil, fmt.Errorf("no prompts for step values %T", current)
	}
	if err != nil {
		return nil, err
	}
	return values, nil
}

func validateInt(answer string) error {
	if _, err := strconv.Atoi(answer); err != nil {
		return errors.New("please enter a whole number")
	}
	return nil
}
