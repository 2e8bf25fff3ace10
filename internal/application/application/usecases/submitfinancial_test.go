package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanad/internal/domain/application"
	"sanad/internal/domain/beneficiary"
	"sanad/internal/shared/errors"
)

func testBeneficiary(t *testing.T) *beneficiary.Beneficiary {
	t.Helper()
	now := time.Now()
	b, err := beneficiary.ReconstructBeneficiary(
		7, "ext-user-1",
		"Amal", "Hassan", "", "",
		beneficiary.StatusOther,
		now, now,
	)
	require.NoError(t, err)
	return b
}

func beneficiaryRepoReturning(t *testing.T, b *beneficiary.Beneficiary) *mockBeneficiaryRepository {
	t.Helper()
	return &mockBeneficiaryRepository{
		FindByExternalUserIDFunc: func(ctx context.Context, externalUserID string) (*beneficiary.Beneficiary, error) {
			return b, nil
		},
	}
}

func TestSubmitFinancialApplicationUseCase_Execute_Success(t *testing.T) {
	var saved *application.Application
	appRepo := &mockApplicationRepository{
		SaveFunc: func(ctx context.Context, a *application.Application) error {
			saved = a
			return a.SetID(11)
		},
	}

	uc := NewSubmitFinancialApplicationUseCase(appRepo, beneficiaryRepoReturning(t, testBeneficiary(t)), &mockLogger{})
	result, err := uc.Execute(context.Background(), SubmitFinancialApplicationCommand{
		ExternalUserID:  "ext-user-1",
		Reason:          "Lost my job and need help covering rent",
		AmountRequested: 500,
		AdditionalInfo:  "Family of four",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(11), result.ApplicationID)
	assert.Equal(t, "Financial", result.Type)
	assert.Equal(t, "Submitted", result.Status)
	require.NotNil(t, result.SubmittedAt)

	require.NotNil(t, saved)
	assert.Equal(t, uint(7), saved.BeneficiaryID())
	formData := saved.FormData()
	assert.Equal(t, "Lost my job and need help covering rent", formData["reason"])
	assert.Equal(t, float64(500), formData["amountRequested"])
	assert.Equal(t, "Family of four", formData["additionalInfo"])
}

func TestSubmitFinancialApplicationUseCase_Execute_OmitsEmptyAdditionalInfo(t *testing.T) {
	var saved *application.Application
	appRepo := &mockApplicationRepository{
		SaveFunc: func(ctx context.Context, a *application.Application) error {
			saved = a
			return a.SetID(12)
		},
	}

	uc := NewSubmitFinancialApplicationUseCase(appRepo, beneficiaryRepoReturning(t, testBeneficiary(t)), &mockLogger{})
	_, err := uc.Execute(context.Background(), SubmitFinancialApplicationCommand{
		ExternalUserID:  "ext-user-1",
		Reason:          "Lost my job and need help covering rent",
		AmountRequested: 500,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	_, present := saved.FormData()["additionalInfo"]
	assert.False(t, present)
}

func TestSubmitFinancialApplicationUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		command SubmitFinancialApplicationCommand
	}{
		{
			name: "reason too short",
			command: SubmitFinancialApplicationCommand{
				ExternalUserID:  "ext-user-1",
				Reason:          "short",
				AmountRequested: 500,
			},
		},
		{
			name: "reason too long",
			command: SubmitFinancialApplicationCommand{
				ExternalUserID:  "ext-user-1",
				Reason:          strings.Repeat("a", 501),
				AmountRequested: 500,
			},
		},
		{
			name: "amount not positive",
			command: SubmitFinancialApplicationCommand{
				ExternalUserID:  "ext-user-1",
				Reason:          "Lost my job and need help covering rent",
				AmountRequested: 0,
			},
		},
		{
			name: "additional info too long",
			command: SubmitFinancialApplicationCommand{
				ExternalUserID:  "ext-user-1",
				Reason:          "Lost my job and need help covering rent",
				AmountRequested: 500,
				AdditionalInfo:  strings.Repeat("a", 1001),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewSubmitFinancialApplicationUseCase(&mockApplicationRepository{}, &mockBeneficiaryRepository{}, &mockLogger{})
			result, err := uc.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestSubmitFinancialApplicationUseCase_Execute_ProfileNotFound(t *testing.T) {
	beneficiaryRepo := &mockBeneficiaryRepository{
		FindByExternalUserIDFunc: func(ctx context.Context, externalUserID string) (*beneficiary.Beneficiary, error) {
			return nil, errors.NewNotFoundError("beneficiary not found")
		},
	}

	uc := NewSubmitFinancialApplicationUseCase(&mockApplicationRepository{}, beneficiaryRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), SubmitFinancialApplicationCommand{
		ExternalUserID:  "ext-user-1",
		Reason:          "Lost my job and need help covering rent",
		AmountRequested: 500,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "Beneficiary profile not found")
}
