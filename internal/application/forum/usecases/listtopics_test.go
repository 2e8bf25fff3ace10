package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanad/internal/domain/beneficiary"
	"sanad/internal/domain/forum"
	vo "sanad/internal/domain/forum/valueobjects"
)

func TestListTopicsUseCase_Execute_Success(t *testing.T) {
	now := time.Now()
	first, err := forum.ReconstructTopic(2, "Clinic hours changed", 7, vo.TopicStatusOpen, 4, now, now, now)
	require.NoError(t, err)
	second, err := forum.ReconstructTopic(1, "Winter aid deadline", 8, vo.TopicStatusOpen, 1, now.Add(-time.Hour), now.Add(-time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)

	var requestedIncludeAll bool
	topicRepo := &mockTopicRepository{
		ListFunc: func(ctx context.Context, includeAll bool) ([]*forum.Topic, error) {
			requestedIncludeAll = includeAll
			return []*forum.Topic{first, second}, nil
		},
	}
	beneficiaryRepo := &mockBeneficiaryRepository{
		FindByIDsFunc: func(ctx context.Context, ids []uint) (map[uint]*beneficiary.Beneficiary, error) {
			assert.ElementsMatch(t, []uint{7, 8}, ids)
			// Only 7 resolves; 8 was deleted.
			return map[uint]*beneficiary.Beneficiary{7: testBeneficiary(t)}, nil
		},
	}

	uc := NewListTopicsUseCase(topicRepo, beneficiaryRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListTopicsQuery{IsAdmin: false})

	require.NoError(t, err)
	assert.False(t, requestedIncludeAll)
	require.Len(t, result.Topics, 2)
	assert.Equal(t, "Clinic hours changed", result.Topics[0].Title)
	assert.Equal(t, "Amal Hassan", result.Topics[0].CreatorName)
	assert.Equal(t, 4, result.Topics[0].PostCount)
	assert.Equal(t, "Unknown User", result.Topics[1].CreatorName)
}

func TestListTopicsUseCase_Execute_AdminSeesHidden(t *testing.T) {
	topicRepo := &mockTopicRepository{
		ListFunc: func(ctx context.Context, includeAll bool) ([]*forum.Topic, error) {
			assert.True(t, includeAll)
			return nil, nil
		},
	}

	uc := NewListTopicsUseCase(topicRepo, &mockBeneficiaryRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListTopicsQuery{IsAdmin: true})

	require.NoError(t, err)
	assert.Empty(t, result.Topics)
}
