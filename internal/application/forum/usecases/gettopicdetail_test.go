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
	"sanad/internal/shared/errors"
)

func TestGetTopicDetailUseCase_Execute_Success(t *testing.T) {
	now := time.Now()
	topic := testTopic(t, 3, vo.TopicStatusOpen)

	seed, err := forum.ReconstructPost(9, 3, 7, "Has anyone applied recently?", vo.PostStatusVisible, now, now)
	require.NoError(t, err)
	reply, err := forum.ReconstructPost(10, 3, 8, "Yes, took about two weeks.", vo.PostStatusVisible, now.Add(time.Minute), now.Add(time.Minute))
	require.NoError(t, err)

	topicRepo := &mockTopicRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*forum.Topic, error) {
			return topic, nil
		},
	}
	postRepo := &mockPostRepository{
		ListByTopicFunc: func(ctx context.Context, topicID uint, includeHidden bool) ([]*forum.Post, error) {
			assert.Equal(t, uint(3), topicID)
			assert.False(t, includeHidden)
			return []*forum.Post{seed, reply}, nil
		},
	}
	beneficiaryRepo := &mockBeneficiaryRepository{
		FindByIDsFunc: func(ctx context.Context, ids []uint) (map[uint]*beneficiary.Beneficiary, error) {
			assert.ElementsMatch(t, []uint{7, 8}, ids)
			return map[uint]*beneficiary.Beneficiary{7: testBeneficiary(t)}, nil
		},
	}

	uc := NewGetTopicDetailUseCase(topicRepo, postRepo, beneficiaryRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), GetTopicDetailQuery{TopicID: 3})

	require.NoError(t, err)
	assert.Equal(t, uint(3), result.TopicID)
	assert.Equal(t, "Amal Hassan", result.CreatorName)
	require.Len(t, result.Posts, 2)
	assert.Equal(t, "Amal Hassan", result.Posts[0].CreatorName)
	assert.Equal(t, "Unknown User", result.Posts[1].CreatorName)
	assert.Equal(t, "Yes, took about two weeks.", result.Posts[1].Content)
}

func TestGetTopicDetailUseCase_Execute_HiddenTopic(t *testing.T) {
	topic := testTopic(t, 3, vo.TopicStatusHiddenByAdmin)
	topicRepo := &mockTopicRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*forum.Topic, error) {
			return topic, nil
		},
	}

	uc := NewGetTopicDetailUseCase(topicRepo, &mockPostRepository{}, &mockBeneficiaryRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetTopicDetailQuery{TopicID: 3, IsAdmin: false})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))

	// Admins still see the hidden topic.
	adminResult, err := uc.Execute(context.Background(), GetTopicDetailQuery{TopicID: 3, IsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, uint(3), adminResult.TopicID)
}

func TestGetTopicDetailUseCase_Execute_ClosedTopic(t *testing.T) {
	topic := testTopic(t, 3, vo.TopicStatusClosedByAdmin)
	topicRepo := &mockTopicRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*forum.Topic, error) {
			return topic, nil
		},
	}

	uc := NewGetTopicDetailUseCase(topicRepo, &mockPostRepository{}, &mockBeneficiaryRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetTopicDetailQuery{TopicID: 3, IsAdmin: false})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))

	adminResult, err := uc.Execute(context.Background(), GetTopicDetailQuery{TopicID: 3, IsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, "ClosedByAdmin", adminResult.Status)
}
