package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanad/internal/domain/beneficiary"
	"sanad/internal/shared/errors"
)

func testBeneficiary(t *testing.T) *beneficiary.Beneficiary {
	t.Helper()
	now := time.Now()
	b, err := beneficiary.ReconstructBeneficiary(
		7, "ext-user-1",
		"Amal", "Hassan", "+96170000000", "Beirut",
		beneficiary.StatusOther,
		now, now,
	)
	require.NoError(t, err)
	return b
}

func TestGetProfileUseCase_Execute_Success(t *testing.T) {
	b := testBeneficiary(t)

	repo := &mockBeneficiaryRepository{
		FindByExternalUserIDFunc: func(ctx context.Context, externalUserID string) (*beneficiary.Beneficiary, error) {
			assert.Equal(t, "ext-user-1", externalUserID)
			return b, nil
		},
	}

	uc := NewGetProfileUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background(), GetProfileQuery{ExternalUserID: "ext-user-1"})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.BeneficiaryID)
	assert.Equal(t, "Amal", result.FirstName)
	assert.Equal(t, "Hassan", result.LastName)
	assert.Equal(t, "+96170000000", result.PhoneNumber)
	assert.Equal(t, "Beirut", result.Address)
	assert.Equal(t, "Other", result.Status)
}

func TestGetProfileUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name       string
		query      GetProfileQuery
		repo       *mockBeneficiaryRepository
		wantErrMsg string
	}{
		{
			name:       "missing external user id",
			query:      GetProfileQuery{},
			repo:       &mockBeneficiaryRepository{},
			wantErrMsg: "Not authenticated",
		},
		{
			name:  "profile not found",
			query: GetProfileQuery{ExternalUserID: "ext-user-1"},
			repo: &mockBeneficiaryRepository{
				FindByExternalUserIDFunc: func(ctx context.Context, externalUserID string) (*beneficiary.Beneficiary, error) {
					return nil, errors.NewNotFoundError("beneficiary not found")
				},
			},
			wantErrMsg: "Beneficiary profile not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewGetProfileUseCase(tt.repo, &mockLogger{})
			result, err := uc.Execute(context.Background(), tt.query)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), tt.wantErrMsg)
		})
	}
}
