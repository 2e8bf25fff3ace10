package usecases

import (
	"context"
	"time"

	"sanad/internal/domain/beneficiary"
	"sanad/internal/shared/constants"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
)

type GetProfileQuery struct {
	ExternalUserID string
}

type GetProfileResult struct {
	BeneficiaryID uint
	FirstName     string
	LastName      string
	PhoneNumber   string
	Address       string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type GetProfileUseCase struct {
	beneficiaryRepo beneficiary.Repository
	logger          logger.Interface
}

func NewGetProfileUseCase(
	beneficiaryRepo beneficiary.Repository,
	logger logger.Interface,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		beneficiaryRepo: beneficiaryRepo,
		logger:          logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*GetProfileResult, error) {
	if query.ExternalUserID == "" {
		return nil, errors.NewUnauthorizedError(constants.MsgNotAuthenticated)
	}

	b, err := uc.beneficiaryRepo.FindByExternalUserID(ctx, query.ExternalUserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(constants.MsgProfileNotFound)
		}
		uc.logger.Errorw("failed to load beneficiary profile", "error", err)
		return nil, err
	}

	return &GetProfileResult{
		BeneficiaryID: b.ID(),
		FirstName:     b.FirstName(),
		LastName:      b.LastName(),
		PhoneNumber:   b.PhoneNumber(),
		Address:       b.Address(),
		Status:        b.Status().String(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}, nil
}
