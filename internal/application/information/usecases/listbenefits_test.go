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

func TestListBenefitsUseCase_Execute(t *testing.T) {
	now := time.Now()
	benefit, err := information.ReconstructBenefit(
		1, "food-assistance", "Food Assistance Program", "Monthly food baskets for eligible families.", "Food",
		information.LanguageEnglish, true, now, now,
	)
	require.NoError(t, err)

	tests := []struct {
		name         string
		language     string
		wantLanguage information.Language
	}{
		{name: "explicit english", language: "en", wantLanguage: information.LanguageEnglish},
		{name: "explicit arabic", language: "ar", wantLanguage: information.LanguageArabic},
		{name: "defaults to english", language: "", wantLanguage: information.LanguageEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			benefitRepo := &mockBenefitRepository{
				ListByLanguageFunc: func(ctx context.Context, language information.Language) ([]*information.Benefit, error) {
					assert.Equal(t, tt.wantLanguage, language)
					return []*information.Benefit{benefit}, nil
				},
			}

			uc := NewListBenefitsUseCase(benefitRepo, &mockLogger{})
			result, err := uc.Execute(context.Background(), ListBenefitsQuery{Language: tt.language})

			require.NoError(t, err)
			require.Len(t, result.Benefits, 1)
			assert.Equal(t, "food-assistance", result.Benefits[0].Slug)
			assert.Equal(t, "Food Assistance Program", result.Benefits[0].Title)
			assert.Equal(t, "Food", result.Benefits[0].Category)
		})
	}
}

func TestListBenefitsUseCase_Execute_InvalidLanguage(t *testing.T) {
	uc := NewListBenefitsUseCase(&mockBenefitRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListBenefitsQuery{Language: "fr"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}
