package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanad/internal/domain/messaging"
)

func TestParticipantResolver_Resolve(t *testing.T) {
	b := testBeneficiary(t)
	w := testCaseWorker(t)
	resolver := messagingResolver(t, b, w)

	tests := []struct {
		name           string
		externalUserID string
		wantKind       messaging.ParticipantKind
		wantProfileID  uint
		wantName       string
	}{
		{
			name:           "beneficiary resolves first",
			externalUserID: "ext-user-1",
			wantKind:       messaging.ParticipantBeneficiary,
			wantProfileID:  7,
			wantName:       "Amal Hassan",
		},
		{
			name:           "case worker resolves second",
			externalUserID: "ext-worker-1",
			wantKind:       messaging.ParticipantCaseWorker,
			wantProfileID:  2,
			wantName:       "Rania Saab",
		},
		{
			name:           "unknown id falls back to placeholder",
			externalUserID: "ext-gone",
			wantKind:       messaging.ParticipantUnknown,
			wantProfileID:  0,
			wantName:       "Unknown User",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := resolver.Resolve(context.Background(), tt.externalUserID)

			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, ref.Kind)
			assert.Equal(t, tt.wantProfileID, ref.ProfileID)
			assert.Equal(t, tt.wantName, ref.Name)
			assert.Equal(t, tt.externalUserID, ref.ExternalUserID)
			assert.Equal(t, tt.wantKind != messaging.ParticipantUnknown, ref.IsKnown())
		})
	}
}

func TestParticipantResolver_ResolveByID(t *testing.T) {
	b := testBeneficiary(t)
	w := testCaseWorker(t)
	resolver := messagingResolver(t, b, w)

	tests := []struct {
		name               string
		kind               messaging.ParticipantKind
		profileID          uint
		wantKind           messaging.ParticipantKind
		wantExternalUserID string
		wantName           string
	}{
		{
			name:               "beneficiary by id",
			kind:               messaging.ParticipantBeneficiary,
			profileID:          7,
			wantKind:           messaging.ParticipantBeneficiary,
			wantExternalUserID: "ext-user-1",
			wantName:           "Amal Hassan",
		},
		{
			name:               "case worker by id",
			kind:               messaging.ParticipantCaseWorker,
			profileID:          2,
			wantKind:           messaging.ParticipantCaseWorker,
			wantExternalUserID: "ext-worker-1",
			wantName:           "Rania Saab",
		},
		{
			name:      "missing row falls back to placeholder",
			kind:      messaging.ParticipantCaseWorker,
			profileID: 44,
			wantKind:  messaging.ParticipantUnknown,
			wantName:  "Unknown User",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := resolver.ResolveByID(context.Background(), tt.kind, tt.profileID)

			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, ref.Kind)
			assert.Equal(t, tt.profileID, ref.ProfileID)
			assert.Equal(t, tt.wantExternalUserID, ref.ExternalUserID)
			assert.Equal(t, tt.wantName, ref.Name)
		})
	}
}
