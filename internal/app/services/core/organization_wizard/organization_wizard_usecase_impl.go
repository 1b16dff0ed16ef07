package organization_wizard

import (
	"context"
	"errors"
	"superadmin-service/internal/app/config"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/utils"
	"superadmin-service/internal/pkg/wizard"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type organizationWizardUsecase struct {
	store              *wizardStore
	Locker             contracts.LockerService
	OrganizationClient contracts.SuperadminOrganizationClient
	AuditPublisher     contracts.AuditPublisher
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
	now                func() time.Time
}

func NewOrganizationWizardUsecase(
	redisRepository contracts.RedisRepository,
	locker contracts.LockerService,
	sealer sealer,
	organizationClient contracts.SuperadminOrganizationClient,
	auditPublisher contracts.AuditPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.OrganizationWizardUsecase {
	return &organizationWizardUsecase{
		store:              &wizardStore{redis: redisRepository, sealer: sealer},
		Locker:             locker,
		OrganizationClient: organizationClient,
		AuditPublisher:     auditPublisher,
		InternalConfig:     internalConfig,
		Log:                logger,
		now:                time.Now,
	}
}

func (uc *organizationWizardUsecase) sessionTTL(state wizard.State) time.Duration {
	if state == wizard.StateSubmitted {
		return time.Duration(uc.InternalConfig.Wizard.SubmittedExpiredTimeInMinutes) * time.Minute
	}
	return time.Duration(uc.InternalConfig.Wizard.SessionExpiredTimeInMinutes) * time.Minute
}

func (uc *organizationWizardUsecase) lockTTL() time.Duration {
	return time.Duration(uc.InternalConfig.Wizard.LockExpiredTimeInSeconds) * time.Second
}

func (uc *organizationWizardUsecase) save(ctx context.Context, record *storedWizard) error {
	ttl := uc.sessionTTL(record.Snapshot.State)
	record.ExpiresAt = uc.now().Add(ttl).UTC()
	return uc.store.save(ctx, record, ttl)
}

func (uc *organizationWizardUsecase) gateway() wizard.Gateway {
	return NewOrganizationGateway(uc.OrganizationClient)
}

func (uc *organizationWizardUsecase) CreateWizard(ctx context.Context) (*responses.WizardSession, error) {
	requestID := utils.GetRequestID(ctx)
	adminID := utils.GetAdminID(ctx)
	uc.Log.Info("organizationWizardUsecase.CreateWizard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAdminIDKey, adminID),
	)

	controller := wizard.NewController(uc.gateway())
	record := &storedWizard{
		ID:        uuid.NewString(),
		OwnerID:   adminID,
		Snapshot:  controller.Snapshot(),
		CreatedAt: uc.now().UTC(),
	}
	if err := uc.save(ctx, record); err != nil {
		uc.Log.Error("organizationWizardUsecase.CreateWizard error saving wizard",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("organizationWizardUsecase.CreateWizard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWizardIDKey, record.ID),
	)
	return buildSession(record, controller), nil
}

func (uc *organizationWizardUsecase) GetWizard(ctx context.Context, wizardID string) (*responses.WizardSession, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("organizationWizardUsecase.GetWizard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWizardIDKey, wizardID),
	)

	if err := utils.ValidateWizardID(wizardID); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamWizardID)
	}

	record, err := uc.loadOwned(ctx, wizardID)
	if err != nil {
		return nil, err
	}
	controller, err := wizard.Restore(uc.gateway(), record.Snapshot)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}
	return buildSession(record, controller), nil
}

func (uc *organizationWizardUsecase) SetValues(ctx context.Context, wizardID string, request requests.WizardValues) (*responses.WizardSession, error) {
	uc.Log.Info("organizationWizardUsecase.SetValues called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingWizardIDKey, wizardID),
		zap.Int(constvars.LoggingWizardStepKey, request.Step),
	)

	return uc.mutate(ctx, wizardID, func(ctx context.Context, controller *wizard.Controller) error {
		values, err := decodeValues(controller.Step(), request.Step, request.Values)
		if err != nil {
			return err
		}
		return controller.SetValues(values)
	})
}

func (uc *organizationWizardUsecase) ValidateStep(ctx context.Context, wizardID string) (*responses.WizardSession, error) {
	uc.Log.Info("organizationWizardUsecase.ValidateStep called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingWizardIDKey, wizardID),
	)

	return uc.mutate(ctx, wizardID, func(ctx context.Context, controller *wizard.Controller) error {
		_, err := controller.ValidateCurrentStep()
		return err
	})
}

func (uc *organizationWizardUsecase) Advance(ctx context.Context, wizardID string, request requests.AdvanceWizard) (*responses.WizardSession, error) {
	uc.Log.Info("organizationWizardUsecase.Advance called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingWizardIDKey, wizardID),
	)

	return uc.mutate(ctx, wizardID, func(ctx context.Context, controller *wizard.Controller) error {
		if len(request.Values) > 0 {
			values, err := decodeValues(controller.Step(), request.Step, request.Values)
			if err != nil {
				return err
			}
			if err := controller.SetValues(values); err != nil {
				return err
			}
		}
		return controller.Advance(ctx)
	})
}

func (uc *organizationWizardUsecase) Retreat(ctx context.Context, wizardID string) (*responses.WizardSession, error) {
	uc.Log.Info("organizationWizardUsecase.Retreat called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingWizardIDKey, wizardID),
	)

	return uc.mutate(ctx, wizardID, func(ctx context.Context, controller *wizard.Controller) error {
		return controller.Retreat()
	})
}

func (uc *organizationWizardUsecase) DiscardWizard(ctx context.Context, wizardID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("organizationWizardUsecase.DiscardWizard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWizardIDKey, wizardID),
	)

	if err := utils.ValidateWizardID(wizardID); err != nil {
		return exceptions.ErrURLParamIDValidation(err, constvars.URLParamWizardID)
	}

	unlock, err := uc.lock(ctx, wizardID)
	if err != nil {
		return err
	}
	defer unlock()

	record, err := uc.loadOwned(ctx, wizardID)
	if err != nil {
		return err
	}
	if record.Snapshot.State == wizard.StateSubmitting {
		return exceptions.ErrWizardSubmitting(nil)
	}

	if err := uc.store.delete(ctx, wizardID); err != nil {
		uc.Log.Error("organizationWizardUsecase.DiscardWizard error deleting wizard",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("organizationWizardUsecase.DiscardWizard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWizardIDKey, wizardID),
	)
	return nil
}

// mutate runs apply on the restored controller under the wizard lock and
// stores the resulting state.
func (uc *organizationWizardUsecase) mutate(ctx context.Context, wizardID string, apply func(ctx context.Context, controller *wizard.Controller) error) (*responses.WizardSession, error) {
	requestID := utils.GetRequestID(ctx)

	if err := utils.ValidateWizardID(wizardID); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamWizardID)
	}

	unlock, err := uc.lock(ctx, wizardID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	record, err := uc.loadOwned(ctx, wizardID)
	if err != nil {
		return nil, err
	}

	// The submitting state must be stored before the create call goes out so
	// a concurrent request cannot submit the same draft again.
	persistSubmitting := func(ctx context.Context, snapshot wizard.Snapshot) error {
		pending := *record
		pending.Snapshot = snapshot
		return uc.save(ctx, &pending)
	}

	controller, err := wizard.Restore(uc.gateway(), record.Snapshot, wizard.WithSubmitHook(persistSubmitting))
	if err != nil {
		uc.Log.Error("organizationWizardUsecase.mutate error restoring wizard",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWizardIDKey, wizardID),
			zap.Error(err),
		)
		return nil, exceptions.ErrServerProcess(err)
	}

	previousState := controller.State()
	basicInformation, _ := controller.Values(wizard.StepBasicInformation).(wizard.BasicInformation)

	applyErr := apply(ctx, controller)
	if !changesState(applyErr) {
		uc.Log.Info("organizationWizardUsecase.mutate rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWizardIDKey, wizardID),
			zap.String(constvars.LoggingWizardStateKey, string(previousState)),
			zap.Error(applyErr),
		)
		return nil, mapWizardError(applyErr)
	}

	// Once the organization exists upstream it is audited and reported even
	// when the tombstone cannot be stored. The stored submitting state keeps
	// the draft from being submitted twice until it expires.
	justSubmitted := previousState != wizard.StateSubmitted && controller.State() == wizard.StateSubmitted
	if justSubmitted {
		uc.AuditPublisher.Publish(ctx, requests.AuditEvent{
			Event:      constvars.AuditEventOrganizationCreated,
			AdminID:    record.OwnerID,
			ResourceID: controller.CreatedID(),
			Attributes: map[string]any{
				"organizationId": basicInformation.OrganizationID,
				"name":           basicInformation.Name,
				"wizardId":       wizardID,
			},
		})
	}

	record.Snapshot = controller.Snapshot()
	if err := uc.save(ctx, record); err != nil {
		uc.Log.Error("organizationWizardUsecase.mutate error saving wizard",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWizardIDKey, wizardID),
			zap.String(constvars.LoggingOrganizationIDKey, controller.CreatedID()),
			zap.Error(err),
		)
		if !justSubmitted {
			return nil, err
		}
	}

	uc.Log.Info("organizationWizardUsecase.mutate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWizardIDKey, wizardID),
		zap.Int(constvars.LoggingWizardStepKey, int(controller.Step())),
		zap.String(constvars.LoggingWizardStateKey, string(controller.State())),
	)

	session := buildSession(record, controller)
	if applyErr != nil {
		return session, mapWizardError(applyErr)
	}
	return session, nil
}

func (uc *organizationWizardUsecase) lock(ctx context.Context, wizardID string) (func(), error) {
	requestID := utils.GetRequestID(ctx)
	key := lockKey(wizardID)

	acquired, lockValue, err := uc.Locker.TryLock(ctx, key, uc.lockTTL())
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrWizardBusy(nil, wizardID)
	}

	return func() {
		if err := uc.Locker.Unlock(context.WithoutCancel(ctx), key, lockValue); err != nil {
			uc.Log.Error("organizationWizardUsecase.unlock error releasing wizard lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingWizardIDKey, wizardID),
				zap.Error(err),
			)
		}
	}, nil
}

// loadOwned hides wizards of other admins behind a not found error.
func (uc *organizationWizardUsecase) loadOwned(ctx context.Context, wizardID string) (*storedWizard, error) {
	record, err := uc.store.load(ctx, wizardID)
	if err != nil {
		uc.Log.Error("organizationWizardUsecase.loadOwned error loading wizard",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingWizardIDKey, wizardID),
			zap.Error(err),
		)
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrWizardNotFound(nil, wizardID)
	}
	if record.OwnerID != utils.GetAdminID(ctx) {
		return nil, exceptions.ErrWizardOwner(nil, wizardID)
	}
	return record, nil
}

func decodeValues(current wizard.StepID, step int, raw []byte) (wizard.StepValues, error) {
	target := current
	if step != 0 {
		target = wizard.StepID(step)
	}
	if target != current {
		return nil, &wizard.StepMismatchError{Current: current, Got: target}
	}

	values, err := wizard.DecodeStepValues(target, raw)
	if err != nil {
		return nil, exceptions.ErrInvalidFormat(err, "values")
	}
	return values, nil
}

// changesState reports whether the controller may have moved and must be
// stored again.
func changesState(err error) bool {
	if err == nil {
		return true
	}
	var fieldErr *wizard.FieldValidationError
	var submissionErr *wizard.SubmissionError
	return errors.As(err, &fieldErr) || errors.As(err, &submissionErr) || errors.Is(err, wizard.ErrIncompleteDraft)
}

func mapWizardError(err error) error {
	var (
		fieldErr      *wizard.FieldValidationError
		submissionErr *wizard.SubmissionError
		mismatchErr   *wizard.StepMismatchError
		customErr     *exceptions.CustomError
	)
	switch {
	case err == nil:
		return nil
	case errors.As(err, &fieldErr), errors.Is(err, wizard.ErrIncompleteDraft):
		return exceptions.ErrWizardStepInvalid(err)
	case errors.As(err, &submissionErr):
		return exceptions.ErrWizardSubmissionFailed(submissionErr.Err, submissionErr.Message)
	case errors.As(err, &mismatchErr):
		return exceptions.ErrWizardStepMismatch(err)
	case errors.Is(err, wizard.ErrSubmissionInProgress):
		return exceptions.ErrWizardSubmitting(err)
	case errors.Is(err, wizard.ErrAlreadySubmitted):
		return exceptions.ErrWizardSubmitted(err)
	case errors.As(err, &customErr):
		return customErr
	default:
		return exceptions.ErrServerProcess(err)
	}
}

func buildSession(record *storedWizard, controller *wizard.Controller) *responses.WizardSession {
	step := controller.Step()
	session := &responses.WizardSession{
		ID:                    record.ID,
		Step:                  step,
		StepTitle:             step.String(),
		TotalSteps:            wizard.TotalSteps,
		State:                 controller.State(),
		Steps:                 wizard.Steps(),
		CompletedFields:       controller.Draft().Keys(),
		SubmissionError:       controller.SubmissionError(),
		CreatedOrganizationID: controller.CreatedID(),
		ExpiresAt:             record.ExpiresAt,
	}
	if controller.State() != wizard.StateSubmitted && step != wizard.StepSecurity {
		session.Values = controller.Values(step)
	}
	if result, ok := controller.LastResult(); ok {
		session.Validation = &result
	}
	if session.CompletedFields == nil {
		session.CompletedFields = []string{}
	}
	return session
}
