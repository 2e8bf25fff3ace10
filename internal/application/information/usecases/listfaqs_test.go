package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanad/internal/domain/information"
	"sanad/internal/shared/errors"
)

func TestListFAQsUseCase_Execute_Success(t *testing.T) {
	now := time.Now()
	first, err := information.ReconstructFAQ(1, "How do I apply?", "Use the application form in the portal.", information.LanguageEnglish, 1, true, now, now)
	require.NoError(t, err)
	second, err := information.ReconstructFAQ(2, "How long does review take?", "Usually two to four weeks.", information.LanguageEnglish, 2, true, now, now)
	require.NoError(t, err)

	faqRepo := &mockFAQRepository{
		ListByLanguageFunc: func(ctx context.Context, language information.Language) ([]*information.FAQ, error) {
			assert.Equal(t, information.LanguageEnglish, language)
			return []*information.FAQ{first, second}, nil
		},
	}

	uc := NewListFAQsUseCase(faqRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListFAQsQuery{})

	require.NoError(t, err)
	require.Len(t, result.FAQs, 2)
	assert.Equal(t, "How do I apply?", result.FAQs[0].Question)
	assert.Equal(t, "Usually two to four weeks.", result.FAQs[1].Answer)
}

func TestListFAQsUseCase_Execute_InvalidLanguage(t *testing.T) {
	uc := NewListFAQsUseCase(&mockFAQRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListFAQsQuery{Language: "de"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}
