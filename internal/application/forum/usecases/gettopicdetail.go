package usecases

import (
	"context"
	"time"

	"sanad/internal/domain/beneficiary"
	"sanad/internal/domain/forum"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
)

type GetTopicDetailQuery struct {
	TopicID uint
	IsAdmin bool
}

type PostDetail struct {
	PostID      uint
	CreatorName string
	Content     string
	Status      string
	CreatedAt   time.Time
}

type GetTopicDetailResult struct {
	TopicID        uint
	Title          string
	CreatorName    string
	Status         string
	PostCount      int
	LastActivityAt time.Time
	CreatedAt      time.Time
	Posts          []PostDetail
}

type GetTopicDetailUseCase struct {
	topicRepo       forum.TopicRepository
	postRepo        forum.PostRepository
	beneficiaryRepo beneficiary.Repository
	logger          logger.Interface
}

func NewGetTopicDetailUseCase(
	topicRepo forum.TopicRepository,
	postRepo forum.PostRepository,
	beneficiaryRepo beneficiary.Repository,
	logger logger.Interface,
) *GetTopicDetailUseCase {
	return &GetTopicDetailUseCase{
		topicRepo:       topicRepo,
		postRepo:        postRepo,
		beneficiaryRepo: beneficiaryRepo,
		logger:          logger,
	}
}

func (uc *GetTopicDetailUseCase) Execute(ctx context.Context, query GetTopicDetailQuery) (*GetTopicDetailResult, error) {
	topic, err := uc.topicRepo.FindByID(ctx, query.TopicID)
	if err != nil {
		return nil, err
	}

	// Hidden and closed-but-hidden topics are invisible to regular users.
	if !topic.VisibleTo(query.IsAdmin) {
		return nil, errors.NewNotFoundError("topic not found")
	}

	posts, err := uc.postRepo.ListByTopic(ctx, topic.ID(), query.IsAdmin)
	if err != nil {
		uc.logger.Errorw("failed to list posts", "error", err, "topic_id", topic.ID())
		return nil, err
	}

	ids := []uint{topic.CreatorBeneficiaryID()}
	seen := map[uint]bool{topic.CreatorBeneficiaryID(): true}
	for _, p := range posts {
		if !seen[p.CreatorBeneficiaryID()] {
			seen[p.CreatorBeneficiaryID()] = true
			ids = append(ids, p.CreatorBeneficiaryID())
		}
	}

	creators, err := uc.beneficiaryRepo.FindByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to resolve post creators", "error", err)
		return nil, err
	}

	nameOf := func(id uint) string {
		if b, ok := creators[id]; ok {
			return b.DisplayName()
		}
		return "Unknown User"
	}

	details := make([]PostDetail, 0, len(posts))
	for _, p := range posts {
		details = append(details, PostDetail{
			PostID:      p.ID(),
			CreatorName: nameOf(p.CreatorBeneficiaryID()),
			Content:     p.Content(),
			Status:      p.Status().String(),
			CreatedAt:   p.CreatedAt(),
		})
	}

	return &GetTopicDetailResult{
		TopicID:        topic.ID(),
		Title:          topic.Title(),
		CreatorName:    nameOf(topic.CreatorBeneficiaryID()),
		Status:         topic.Status().String(),
		PostCount:      topic.PostCount(),
		LastActivityAt: topic.LastActivityAt(),
		CreatedAt:      topic.CreatedAt(),
		Posts:          details,
	}, nil
}
