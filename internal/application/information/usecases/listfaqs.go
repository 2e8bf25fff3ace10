package usecases

import (
	"context"

	"sanad/internal/domain/information"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
)

type ListFAQsQuery struct {
	Language string
}

type FAQSummary struct {
	FAQID    uint
	Question string
	Answer   string
}

type ListFAQsResult struct {
	FAQs []FAQSummary
}

type ListFAQsUseCase struct {
	faqRepo information.FAQRepository
	logger  logger.Interface
}

func NewListFAQsUseCase(
	faqRepo information.FAQRepository,
	logger logger.Interface,
) *ListFAQsUseCase {
	return &ListFAQsUseCase{
		faqRepo: faqRepo,
		logger:  logger,
	}
}

func (uc *ListFAQsUseCase) Execute(ctx context.Context, query ListFAQsQuery) (*ListFAQsResult, error) {
	if query.Language == "" {
		query.Language = information.LanguageEnglish.String()
	}

	language, err := information.NewLanguage(query.Language)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	faqs, err := uc.faqRepo.ListByLanguage(ctx, language)
	if err != nil {
		uc.logger.Errorw("failed to list faqs", "error", err)
		return nil, err
	}

	summaries := make([]FAQSummary, 0, len(faqs))
	for _, f := range faqs {
		summaries = append(summaries, FAQSummary{
			FAQID:    f.ID(),
			Question: f.Question(),
			Answer:   f.Answer(),
		})
	}

	return &ListFAQsResult{FAQs: summaries}, nil
}
