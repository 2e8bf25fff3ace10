package usecases

import (
	"context"

	"sanad/internal/domain/beneficiary"
	"sanad/internal/shared/constants"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
)

type EnsureProfileCommand struct {
	ExternalUserID string
	GivenName      string
	FamilyName     string
}

type EnsureProfileResult struct {
	BeneficiaryID uint
	Created       bool
}

// EnsureProfileUseCase lazily creates a beneficiary row for a first-time
// authenticated user so that profile, forum and messaging operations have
// an internal identity to reference.
type EnsureProfileUseCase struct {
	beneficiaryRepo beneficiary.Repository
	logger          logger.Interface
}

func NewEnsureProfileUseCase(
	beneficiaryRepo beneficiary.Repository,
	logger logger.Interface,
) *EnsureProfileUseCase {
	return &EnsureProfileUseCase{
		beneficiaryRepo: beneficiaryRepo,
		logger:          logger,
	}
}

func (uc *EnsureProfileUseCase) Execute(ctx context.Context, cmd EnsureProfileCommand) (*EnsureProfileResult, error) {
	if cmd.ExternalUserID == "" {
		return nil, errors.NewUnauthorizedError(constants.MsgNotAuthenticated)
	}

	existing, err := uc.beneficiaryRepo.FindByExternalUserID(ctx, cmd.ExternalUserID)
	if err == nil {
		return &EnsureProfileResult{BeneficiaryID: existing.ID(), Created: false}, nil
	}
	if !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to look up beneficiary", "error", err)
		return nil, err
	}

	firstName := cmd.GivenName
	if firstName == "" {
		firstName = "New"
	}
	lastName := cmd.FamilyName
	if lastName == "" {
		lastName = "User"
	}

	b, err := beneficiary.NewBeneficiary(cmd.ExternalUserID, firstName, lastName, beneficiary.StatusOther)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.beneficiaryRepo.Save(ctx, b); err != nil {
		uc.logger.Errorw("failed to create beneficiary profile", "error", err)
		return nil, err
	}

	uc.logger.Infow("beneficiary profile created", "beneficiary_id", b.ID())

	return &EnsureProfileResult{BeneficiaryID: b.ID(), Created: true}, nil
}
