package usecases

import (
	"context"

	"sanad/internal/domain/information"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
)

type ListBenefitsQuery struct {
	Language string
}

type BenefitSummary struct {
	BenefitID   uint
	Slug        string
	Title       string
	Description string
	Category    string
}

type ListBenefitsResult struct {
	Benefits []BenefitSummary
}

type ListBenefitsUseCase struct {
	benefitRepo information.BenefitRepository
	logger      logger.Interface
}

func NewListBenefitsUseCase(
	benefitRepo information.BenefitRepository,
	logger logger.Interface,
) *ListBenefitsUseCase {
	return &ListBenefitsUseCase{
		benefitRepo: benefitRepo,
		logger:      logger,
	}
}

func (uc *ListBenefitsUseCase) Execute(ctx context.Context, query ListBenefitsQuery) (*ListBenefitsResult, error) {
	if query.Language == "" {
		query.Language = information.LanguageEnglish.String()
	}

	language, err := information.NewLanguage(query.Language)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	benefits, err := uc.benefitRepo.ListByLanguage(ctx, language)
	if err != nil {
		uc.logger.Errorw("failed to list benefits", "error", err)
		return nil, err
	}

	summaries := make([]BenefitSummary, 0, len(benefits))
	for _, b := range benefits {
		summaries = append(summaries, BenefitSummary{
			BenefitID:   b.ID(),
			Slug:        b.Slug(),
			Title:       b.Title(),
			Description: b.Description(),
			Category:    b.Category(),
		})
	}

	return &ListBenefitsResult{Benefits: summaries}, nil
}
