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

type SubmitEducationalApplicationCommand struct {
	ExternalUserID      string
	StudentName         string
	SchoolOrInstitution string
	GradeOrLevel        string
	AssistanceNeeded    string
	EstimatedCost       *float64
	AdditionalInfo      string
}

type SubmitEducationalApplicationUseCase struct {
	applicationRepo application.Repository
	beneficiaryRepo beneficiary.Repository
	logger          logger.Interface
}

func NewSubmitEducationalApplicationUseCase(
	applicationRepo application.Repository,
	beneficiaryRepo beneficiary.Repository,
	logger logger.Interface,
) *SubmitEducationalApplicationUseCase {
	return &SubmitEducationalApplicationUseCase{
		applicationRepo: applicationRepo,
		beneficiaryRepo: beneficiaryRepo,
		logger:          logger,
	}
}

func (uc *SubmitEducationalApplicationUseCase) Execute(ctx context.Context, cmd SubmitEducationalApplicationCommand) (*SubmitApplicationResult, error) {
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
		"studentName":         cmd.StudentName,
		"schoolOrInstitution": cmd.SchoolOrInstitution,
		"gradeOrLevel":        cmd.GradeOrLevel,
		"assistanceNeeded":    cmd.AssistanceNeeded,
	}
	if cmd.EstimatedCost != nil {
		formData["estimatedCost"] = *cmd.EstimatedCost
	}
	if cmd.AdditionalInfo != "" {
		formData["additionalInfo"] = cmd.AdditionalInfo
	}

	return submitApplication(ctx, uc.applicationRepo, uc.logger, b.ID(), vo.TypeEducational, formData)
}

func (uc *SubmitEducationalApplicationUseCase) validateCommand(cmd SubmitEducationalApplicationCommand) error {
	if len(cmd.StudentName) == 0 {
		return errors.NewValidationError("student name is required")
	}
	if len(cmd.StudentName) > 256 {
		return errors.NewValidationError("student name exceeds maximum length of 256 characters")
	}
	if len(cmd.SchoolOrInstitution) == 0 {
		return errors.NewValidationError("school or institution is required")
	}
	if len(cmd.SchoolOrInstitution) > 256 {
		return errors.NewValidationError("school or institution exceeds maximum length of 256 characters")
	}
	if len(cmd.GradeOrLevel) == 0 {
		return errors.NewValidationError("grade or level is required")
	}
	if len(cmd.GradeOrLevel) > 100 {
		return errors.NewValidationError("grade or level exceeds maximum length of 100 characters")
	}
	if len(cmd.AssistanceNeeded) < 10 {
		return errors.NewValidationError("assistance needed must be at least 10 characters")
	}
	if len(cmd.AssistanceNeeded) > 1000 {
		return errors.NewValidationError("assistance needed exceeds maximum length of 1000 characters")
	}
	if cmd.EstimatedCost != nil && *cmd.EstimatedCost <= 0 {
		return errors.NewValidationError("estimated cost must be positive")
	}
	if len(cmd.AdditionalInfo) > 1000 {
		return errors.NewValidationError("additional info exceeds maximum length of 1000 characters")
	}
	return nil
}
