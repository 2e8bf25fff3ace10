package usecases

import (
	"context"
	"time"

	"sanad/internal/domain/application"
	"sanad/internal/domain/beneficiary"
	"sanad/internal/shared/constants"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
)

type ListMyApplicationsQuery struct {
	ExternalUserID string
}

type ApplicationSummary struct {
	ApplicationID uint
	Type          string
	Status        string
	FormData      map[string]interface{}
	SubmittedAt   *time.Time
	CreatedAt     time.Time
}

type ListMyApplicationsResult struct {
	Applications []ApplicationSummary
}

type ListMyApplicationsUseCase struct {
	applicationRepo application.Repository
	beneficiaryRepo beneficiary.Repository
	logger          logger.Interface
}

func NewListMyApplicationsUseCase(
	applicationRepo application.Repository,
	beneficiaryRepo beneficiary.Repository,
	logger logger.Interface,
) *ListMyApplicationsUseCase {
	return &ListMyApplicationsUseCase{
		applicationRepo: applicationRepo,
		beneficiaryRepo: beneficiaryRepo,
		logger:          logger,
	}
}

func (uc *ListMyApplicationsUseCase) Execute(ctx context.Context, query ListMyApplicationsQuery) (*ListMyApplicationsResult, error) {
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

	apps, err := uc.applicationRepo.ListByBeneficiary(ctx, b.ID())
	if err != nil {
		uc.logger.Errorw("failed to list applications", "error", err)
		return nil, err
	}

	summaries := make([]ApplicationSummary, 0, len(apps))
	for _, app := range apps {
		summaries = append(summaries, ApplicationSummary{
			ApplicationID: app.ID(),
			Type:          app.ApplicationType().String(),
			Status:        app.Status().String(),
			FormData:      app.FormData(),
			SubmittedAt:   app.SubmittedAt(),
			CreatedAt:     app.CreatedAt(),
		})
	}

	return &ListMyApplicationsResult{Applications: summaries}, nil
}
