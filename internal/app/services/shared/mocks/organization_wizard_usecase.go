package mocks

import (
	"context"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type OrganizationWizardUsecase struct {
	mock.Mock
}

func sessionResult(args mock.Arguments) (*responses.WizardSession, error) {
	session, _ := args.Get(0).(*responses.WizardSession)
	return session, args.Error(1)
}

func (m *OrganizationWizardUsecase) CreateWizard(ctx context.Context) (*responses.WizardSession, error) {
	return sessionResult(m.Called(ctx))
}

func (m *OrganizationWizardUsecase) GetWizard(ctx context.Context, wizardID string) (*responses.WizardSession, error) {
	return sessionResult(m.Called(ctx, wizardID))
}

func (m *OrganizationWizardUsecase) SetValues(ctx context.Context, wizardID string, request requests.WizardValues) (*responses.WizardSession, error) {
	return sessionResult(m.Called(ctx, wizardID, request))
}

func (m *OrganizationWizardUsecase) ValidateStep(ctx context.Context, wizardID string) (*responses.WizardSession, error) {
	return sessionResult(m.Called(ctx, wizardID))
}

func (m *OrganizationWizardUsecase) Advance(ctx context.Context, wizardID string, request requests.AdvanceWizard) (*responses.WizardSession, error) {
	return sessionResult(m.Called(ctx, wizardID, request))
}

func (m *OrganizationWizardUsecase) Retreat(ctx context.Context, wizardID string) (*responses.WizardSession, error) {
	return sessionResult(m.Called(ctx, wizardID))
}

func (m *OrganizationWizardUsecase) DiscardWizard(ctx context.Context, wizardID string) error {
	return m.Called(ctx, wizardID).Error(0)
}
