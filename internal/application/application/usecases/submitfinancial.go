package usecases

import (
	"context"
	"time"

	"sanad/internal/domain/application"
	vo "sanad/internal/domain/application/valueobjects"
	"sanad/internal/domain/beneficiary"
	"sanad/internal/shared/constants"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
)

type SubmitFinancialApplicationCommand struct {
	ExternalUserID  string
	Reason          string
	AmountRequested float64
	AdditionalInfo  string
}

type SubmitApplicationResult struct {
	ApplicationID uint
	Type          string
	Status        string
	SubmittedAt   *time.Time
}

type SubmitFinancialApplicationUseCase struct {
	applicationRepo application.Repository
	beneficiaryRepo beneficiary.Repository
	logger          logger.Interface
}

func NewSubmitFinancialApplicationUseCase(
	applicationRepo application.Repository,
	beneficiaryRepo beneficiary.Repository,
	logger logger.Interface,
) *SubmitFinancialApplicationUseCase {
	return &SubmitFinancialApplicationUseCase{
		applicationRepo: applicationRepo,
		beneficiaryRepo: beneficiaryRepo,
		logger:          logger,
	}
}

func (uc *SubmitFinancialApplicationUseCase) Execute(ctx context.Context, cmd SubmitFinancialApplicationCommand) (*SubmitApplicationResult, error) {
	if cmd.ExternalUserID == "" {
		return nil, errors.NewUnauthorizedError(constants.MsgNotAuthenticated)
	}

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	b, err := uc.beneficiaryRepo.FindByExternalUserID(ctx, cmd.ExternalUserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(constants.MsgProfileNotFound)
		}
		uc.logger.Errorw("failed to load beneficiary profile", "error", err)
		return nil, err
	}

	formData := map[string]interface{}{
		"reason":          cmd.Reason,
		"amountRequested": cmd.AmountRequested,
	}
	if cmd.AdditionalInfo != "" {
		formData["additionalInfo"] = cmd.AdditionalInfo
	}

	return submitApplication(ctx, uc.applicationRepo, uc.logger, b.ID(), vo.TypeFinancial, formData)
}

func (uc *SubmitFinancialApplicationUseCase) validateCommand(cmd SubmitFinancialApplicationCommand) error {
	if len(cmd.Reason) < 10 {
		return errors.NewValidationError("reason must be at least 10 characters")
	}
	if len(cmd.Reason) > 500 {
		return errors.NewValidationError("reason exceeds maximum length of 500 characters")
	}
	if cmd.AmountRequested <= 0 {
		return errors.NewValidationError("amount requested must be positive")
	}
	if len(cmd.AdditionalInfo) > 1000 {
		return errors.NewValidationError("additional info exceeds maximum length of 1000 characters")
	}
	return nil
}

// submitApplication persists a new submitted application. Shared by the
// per-type submit use cases after their type-specific validation.
func submitApplication(
	ctx context.Context,
	repo application.Repository,
	log logger.Interface,
	beneficiaryID uint,
	applicationType vo.ApplicationType,
	formData map[string]interface{},
) (*SubmitApplicationResult, error) {
	app, err := application.NewSubmittedApplication(beneficiaryID, applicationType, formData)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := repo.Save(ctx, app); err != nil {
		log.Errorw("failed to save application", "error", err, "type", applicationType.String())
		return nil, err
	}

	log.Infow("application submitted", "application_id", app.ID(), "type", applicationType.String())

	return &SubmitApplicationResult{
		ApplicationID: app.ID(),
		Type:          app.ApplicationType().String(),
		Status:        app.Status().String(),
		SubmittedAt:   app.SubmittedAt(),
	}, nil
}
