package cli

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrCancelled is returned when the admin interrupts a prompt.
var ErrCancelled = errors.New("cancelled")

// Prompter asks the admin for input. The survey implementation talks to the
// terminal; tests script the answers.
type Prompter interface {
	Input(message, defaultValue string, validate func(string) error) (string, error)
	Password(message string) (string, error)
	Select(message string, options []string, defaultOption string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

type surveyPrompter struct{}

func NewSurveyPrompter() Prompter {
	return surveyPrompter{}
}

func (surveyPrompter) Input(message, defaultValue string, validate func(string) error) (string, error) {
	var out string
	prompt := &survey.Input{Message: message, Default: defaultValue}
	var opts []survey.AskOpt
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(answer interface{}) error {
			value, _ := answer.(string)
			return validate(value)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Password(message string) (string, error) {
	var out string
	if err := survey.AskOne(&survey.Password{Message: message}, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Select(message string, options []string, defaultOption string) (string, error) {
	var out string
	prompt := &survey.Select{Message: message, Options: options}
	if defaultOption != "" {
		prompt.Default = defaultOption
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	var out bool
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: defaultValue}, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrCancelled
	}
	return err
}
