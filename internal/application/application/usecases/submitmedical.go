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

type SubmitMedicalApplicationCommand struct {
	ExternalUserID     string
	Condition          string
	TreatmentRequired  string
	EstimatedCost      *float64
	HospitalClinicName string
	AdditionalInfo     string
}

type SubmitMedicalApplicationUseCase struct {
	applicationRepo application.Repository
	beneficiaryRepo beneficiary.Repository
	logger          logger.Interface
}

func NewSubmitMedicalApplicationUseCase(
	applicationRepo application.Repository,
	beneficiaryRepo beneficiary.Repository,
	logger logger.Interface,
) *SubmitMedicalApplicationUseCase {
	return &SubmitMedicalApplicationUseCase{
		applicationRepo: applicationRepo,
		beneficiaryRepo: beneficiaryRepo,
		logger:          logger,
	}
}

func (uc *SubmitMedicalApplicationUseCase) Execute(ctx context.Context, cmd SubmitMedicalApplicationCommand) (*SubmitApplicationResult, error) {
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
		"condition":         cmd.Condition,
		"treatmentRequired": cmd.TreatmentRequired,
	}
	if cmd.EstimatedCost != nil {
		formData["estimatedCost"] = *cmd.EstimatedCost
	}
	if cmd.HospitalClinicName != "" {
		formData["hospitalClinicName"] = cmd.HospitalClinicName
	}
	if cmd.AdditionalInfo != "" {
		formData["additionalInfo"] = cmd.AdditionalInfo
	}

	return submitApplication(ctx, uc.applicationRepo, uc.logger, b.ID(), vo.TypeMedical, formData)
}

func (uc *SubmitMedicalApplicationUseCase) validateCommand(cmd SubmitMedicalApplicationCommand) error {
	if len(cmd.Condition) < 5 {
		return errors.NewValidationError("condition must be at least 5 characters")
	}
	if len(cmd.Condition) > 500 {
		return errors.NewValidationError("condition exceeds maximum length of 500 characters")
	}
	if len(cmd.TreatmentRequired) < 5 {
		return errors.NewValidationError("treatment required must be at least 5 characters")
	}
	if len(cmd.TreatmentRequired) > 1000 {
		return errors.NewValidationError("treatment required exceeds maximum length of 1000 characters")
	}
	if cmd.EstimatedCost != nil && *cmd.EstimatedCost <= 0 {
		return errors.NewValidationError("estimated cost must be positive")
	}
	if len(cmd.HospitalClinicName) > 200 {
		return errors.NewValidationError("hospital or clinic name exceeds maximum length of 200 characters")
	}
	if len(cmd.AdditionalInfo) > 1000 {
		return errors.NewValidationError("additional info exceeds maximum length of 1000 characters")
	}
	return nil
}
