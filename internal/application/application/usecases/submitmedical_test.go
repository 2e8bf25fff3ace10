package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanad/internal/domain/application"
	"sanad/internal/shared/errors"
)

func TestSubmitMedicalApplicationUseCase_Execute_Success(t *testing.T) {
	cost := 1200.50

	var saved *application.Application
	appRepo := &mockApplicationRepository{
		SaveFunc: func(ctx context.Context, a *application.Application) error {
			saved = a
			return a.SetID(21)
		},
	}

	uc := NewSubmitMedicalApplicationUseCase(appRepo, beneficiaryRepoReturning(t, testBeneficiary(t)), &mockLogger{})
	result, err := uc.Execute(context.Background(), SubmitMedicalApplicationCommand{
		ExternalUserID:     "ext-user-1",
		Condition:          "Chronic asthma",
		TreatmentRequired:  "Monthly inhaler refills and a specialist consultation",
		EstimatedCost:      &cost,
		HospitalClinicName: "City Medical Center",
	})

	require.NoError(t, err)
	assert.Equal(t, "Medical", result.Type)
	assert.Equal(t, "Submitted", result.Status)

	require.NotNil(t, saved)
	formData := saved.FormData()
	assert.Equal(t, "Chronic asthma", formData["condition"])
	assert.Equal(t, cost, formData["estimatedCost"])
	assert.Equal(t, "City Medical Center", formData["hospitalClinicName"])
}

func TestSubmitMedicalApplicationUseCase_Execute_ValidationErrors(t *testing.T) {
	negative := -5.0

	tests := []struct {
		name    string
		command SubmitMedicalApplicationCommand
	}{
		{
			name: "condition too short",
			command: SubmitMedicalApplicationCommand{
				ExternalUserID:    "ext-user-1",
				Condition:         "flu",
				TreatmentRequired: "Antibiotics and rest",
			},
		},
		{
			name: "treatment too short",
			command: SubmitMedicalApplicationCommand{
				ExternalUserID:    "ext-user-1",
				Condition:         "Chronic asthma",
				TreatmentRequired: "n/a",
			},
		},
		{
			name: "negative estimated cost",
			command: SubmitMedicalApplicationCommand{
				ExternalUserID:    "ext-user-1",
				Condition:         "Chronic asthma",
				TreatmentRequired: "Monthly inhaler refills",
				EstimatedCost:     &negative,
			},
		},
		{
			name: "hospital name too long",
			command: SubmitMedicalApplicationCommand{
				ExternalUserID:     "ext-user-1",
				Condition:          "Chronic asthma",
				TreatmentRequired:  "Monthly inhaler refills",
				HospitalClinicName: strings.Repeat("a", 201),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewSubmitMedicalApplicationUseCase(&mockApplicationRepository{}, &mockBeneficiaryRepository{}, &mockLogger{})
			result, err := uc.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
