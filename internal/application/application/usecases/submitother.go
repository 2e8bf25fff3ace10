package usecases

import (
	"context"

	"sanad/internal/domain/application"
	vo "sanad/internal/domain/application/valueobjects"
	"sanad/internal/domain/beneficiary"
	"sanad/internal/shared/constants"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
)

type SubmitOtherApplicationCommand struct {
	ExternalUserID string
	RequestType    string
	Description    string
	EstimatedCost  *float64
	AdditionalInfo string
}

type SubmitOtherApplicationUseCase struct {
	applicationRepo application.Repository
	beneficiaryRepo beneficiary.Repository
	logger          logger.Interface
}

func NewSubmitOtherApplicationUseCase(
	applicationRepo application.Repository,
	beneficiaryRepo beneficiary.Repository,
	logger logger.Interface,
) *SubmitOtherApplicationUseCase {
	return &SubmitOtherApplicationUseCase{
		applicationRepo: applicationRepo,
		beneficiaryRepo: beneficiaryRepo,
		logger:          logger,
	}
}

func (uc *SubmitOtherApplicationUseCase) Execute(ctx context.Context, cmd SubmitOtherApplicationCommand) (*SubmitApplicationResult, error) {
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
		"requestType": cmd.RequestType,
		"description": cmd.Description,
	}
	if cmd.EstimatedCost != nil {
		formData["estimatedCost"] = *cmd.EstimatedCost
	}
	if cmd.AdditionalInfo != "" {
		formData["additionalInfo"] = cmd.AdditionalInfo
	}

	return submitApplication(ctx, uc.applicationRepo, uc.logger, b.ID(), vo.TypeOther, formData)
}

func (uc *SubmitOtherApplicationUseCase) validateCommand(cmd SubmitOtherApplicationCommand) error {
	if len(cmd.RequestType) < 3 {
		return errors.NewValidationError("request type must be at least 3 characters")
	}
	if len(cmd.RequestType) > 100 {
		return errors.NewValidationError("request type exceeds maximum length of 100 characters")
	}
	if len(cmd.Description) < 10 {
		return errors.NewValidationError("description must be at least 10 characters")
	}
	if len(cmd.Description) > 2000 {
		return errors.NewValidationError("description exceeds maximum length of 2000 characters")
	}
	if cmd.EstimatedCost != nil && *cmd.EstimatedCost <= 0 {
		return errors.NewValidationError("estimated cost must be positive")
	}
	if len(cmd.AdditionalInfo) > 1000 {
		return errors.NewValidationError("additional info exceeds maximum length of 1000 characters")
	}
	return nil
}
