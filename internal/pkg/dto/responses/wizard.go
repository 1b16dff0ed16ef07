package responses

import (
	"superadmin-service/internal/pkg/wizard"
	"time"
)

type WizardSession struct {
	ID                    string                   `json:"id"`
	Step                  wizard.StepID            `json:"step"`
	StepTitle             string                   `json:"stepTitle"`
	TotalSteps            int                      `json:"totalSteps"`
	State                 wizard.State             `json:"state"`
	Steps                 []wizard.StepDefinition  `json:"steps"`
	Values                wizard.StepValues        `json:"values,omitempty"`
	CompletedFields       []string                 `json:"completedFields"`
	Validation            *wizard.ValidationResult `json:"validation,omitempty"`
	SubmissionError       string                   `json:"submissionError,omitempty"`
	CreatedOrganizationID string                   `json:"createdOrganizationId,omitempty"`
	ExpiresAt             time.Time                `json:"expiresAt"`
}

type UploadedLogo struct {
	ObjectName string    `json:"objectName"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
