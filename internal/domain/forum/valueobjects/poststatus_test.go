package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, PostStatusVisible.CanTransitionTo(PostStatusHiddenByAdmin))
	assert.True(t, PostStatusHiddenByAdmin.CanTransitionTo(PostStatusVisible))
	assert.True(t, PostStatusVisible.CanTransitionTo(PostStatusVisible))
	assert.False(t, PostStatusVisible.CanTransitionTo(PostStatus("Deleted")))
}

func TestNewPostStatus(t *testing.T) {
	status, err := NewPostStatus("Visible")
	assert.NoError(t, err)
	assert.Equal(t, PostStatusVisible, status)

	_, err = NewPostStatus("Removed")
	assert.Error(t, err)
}
