package usecases

import (
	"context"

	"sanad/internal/domain/beneficiary"
	"sanad/internal/shared/constants"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
)

type UpdateProfileCommand struct {
	ExternalUserID string
	FirstName      string
	LastName       string
	PhoneNumber    string
	Address        string
}

type UpdateProfileResult struct {
	BeneficiaryID uint
}

type UpdateProfileUseCase struct {
	beneficiaryRepo beneficiary.Repository
	logger          logger.Interface
}

func NewUpdateProfileUseCase(
	beneficiaryRepo beneficiary.Repository,
	logger logger.Interface,
) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		beneficiaryRepo: beneficiaryRepo,
		logger:          logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error) {
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

	if err := b.UpdateContact(cmd.FirstName, cmd.LastName, cmd.PhoneNumber, cmd.Address); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.beneficiaryRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to update beneficiary profile", "error", err)
		return nil, err
	}

	uc.logger.Infow("beneficiary profile updated", "beneficiary_id", b.ID())

	return &UpdateProfileResult{BeneficiaryID: b.ID()}, nil
}

func (uc *UpdateProfileUseCase) validateCommand(cmd UpdateProfileCommand) error {
	if len(cmd.FirstName) == 0 {
		return errors.NewValidationError("first name is required")
	}
	if len(cmd.FirstName) > 256 {
		return errors.NewValidationError("first name exceeds maximum length of 256 characters")
	}
	if len(cmd.LastName) == 0 {
		return errors.NewValidationError("last name is required")
	}
	if len(cmd.LastName) > 256 {
		return errors.NewValidationError("last name exceeds maximum length of 256 characters")
	}
	if len(cmd.PhoneNumber) > 50 {
		return errors.NewValidationError("phone number exceeds maximum length of 50 characters")
	}
	return nil
}
