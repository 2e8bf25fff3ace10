package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanad/internal/domain/beneficiary"
	"sanad/internal/shared/errors"
)

func TestEnsureProfileUseCase_Execute_CreatesProfile(t *testing.T) {
	tests := []struct {
		name          string
		command       EnsureProfileCommand
		wantFirstName string
		wantLastName  string
	}{
		{
			name: "uses token names",
			command: EnsureProfileCommand{
				ExternalUserID: "ext-user-1",
				GivenName:      "Amal",
				FamilyName:     "Hassan",
			},
			wantFirstName: "Amal",
			wantLastName:  "Hassan",
		},
		{
			name:          "falls back to placeholder names",
			command:       EnsureProfileCommand{ExternalUserID: "ext-user-2"},
			wantFirstName: "New",
			wantLastName:  "User",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved *beneficiary.Beneficiary
			repo := &mockBeneficiaryRepository{
				FindByExternalUserIDFunc: func(ctx context.Context, externalUserID string) (*beneficiary.Beneficiary, error) {
					return nil, errors.NewNotFoundError("beneficiary not found")
				},
				SaveFunc: func(ctx context.Context, b *beneficiary.Beneficiary) error {
					saved = b
					return b.SetID(42)
				},
			}

			uc := NewEnsureProfileUseCase(repo, &mockLogger{})
			result, err := uc.Execute(context.Background(), tt.command)

			require.NoError(t, err)
			assert.True(t, result.Created)
			assert.Equal(t, uint(42), result.BeneficiaryID)
			require.NotNil(t, saved)
			assert.Equal(t, tt.wantFirstName, saved.FirstName())
			assert.Equal(t, tt.wantLastName, saved.LastName())
			assert.Equal(t, beneficiary.StatusOther, saved.Status())
		})
	}
}

func TestEnsureProfileUseCase_Execute_ExistingProfile(t *testing.T) {
	b := testBeneficiary(t)

	saveCalled := false
	repo := &mockBeneficiaryRepository{
		FindByExternalUserIDFunc: func(ctx context.Context, externalUserID string) (*beneficiary.Beneficiary, error) {
			return b, nil
		},
		SaveFunc: func(ctx context.Context, b *beneficiary.Beneficiary) error {
			saveCalled = true
			return nil
		},
	}

	uc := NewEnsureProfileUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background(), EnsureProfileCommand{ExternalUserID: "ext-user-1"})

	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, uint(7), result.BeneficiaryID)
	assert.False(t, saveCalled)
}

func TestEnsureProfileUseCase_Execute_NotAuthenticated(t *testing.T) {
	uc := NewEnsureProfileUseCase(&mockBeneficiaryRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), EnsureProfileCommand{})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "Not authenticated")
}
