package contracts

import (
	"context"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"
)

// OrganizationWizardUsecase hosts the organization creation wizard between
// requests. When an operation fails on field validation or on submission it
// returns the updated session together with the error.
type OrganizationWizardUsecase interface {
	CreateWizard(ctx context.Context) (*responses.WizardSession, error)
	GetWizard(ctx context.Context, wizardID string) (*responses.WizardSession, error)
	SetValues(ctx context.Context, wizardID string, request requests.WizardValues) (*responses.WizardSession, error)
	ValidateStep(ctx context.Context, wizardID string) (*responses.WizardSession, error)
	Advance(ctx context.Context, wizardID string, request requests.AdvanceWizard) (*responses.WizardSession, error)
	Retreat(ctx context.Context, wizardID string) (*responses.WizardSession, error)
	DiscardWizard(ctx context.Context, wizardID string) error
}
