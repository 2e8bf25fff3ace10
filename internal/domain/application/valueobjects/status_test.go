package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from ApplicationStatus
		to   ApplicationStatus
		want bool
	}{
		{name: "draft to submitted", from: StatusDraft, to: StatusSubmitted, want: true},
		{name: "submitted to under review", from: StatusSubmitted, to: StatusUnderReview, want: true},
		{name: "under review to approved", from: StatusUnderReview, to: StatusApproved, want: true},
		{name: "under review to rejected", from: StatusUnderReview, to: StatusRejected, want: true},
		{name: "draft cannot skip to approved", from: StatusDraft, to: StatusApproved, want: false},
		{name: "submitted cannot go back to draft", from: StatusSubmitted, to: StatusDraft, want: false},
		{name: "approved is terminal", from: StatusApproved, to: StatusUnderReview, want: false},
		{name: "rejected is terminal", from: StatusRejected, to: StatusSubmitted, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestApplicationStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, StatusSubmitted.IsTerminal())
	assert.False(t, StatusUnderReview.IsTerminal())
}

func TestNewApplicationStatus(t *testing.T) {
	status, err := NewApplicationStatus("Under Review")
	assert.NoError(t, err)
	assert.Equal(t, StatusUnderReview, status)

	_, err = NewApplicationStatus("Pending")
	assert.Error(t, err)
}
