package usecases

import (
	"context"
	"time"

	"sanad/internal/domain/beneficiary"
	"sanad/internal/domain/forum"
	"sanad/internal/shared/logger"
)

type ListTopicsQuery struct {
	IsAdmin bool
}

type TopicSummary struct {
	TopicID        uint
	Title          string
	CreatorName    string
	Status         string
	PostCount      int
	LastActivityAt time.Time
	CreatedAt      time.Time
}

type ListTopicsResult struct {
	Topics []TopicSummary
}

type ListTopicsUseCase struct {
	topicRepo       forum.TopicRepository
	beneficiaryRepo beneficiary.Repository
	logger          logger.Interface
}

func NewListTopicsUseCase(
	topicRepo forum.TopicRepository,
	beneficiaryRepo beneficiary.Repository,
	logger logger.Interface,
) *ListTopicsUseCase {
	return &ListTopicsUseCase{
		topicRepo:       topicRepo,
		beneficiaryRepo: beneficiaryRepo,
		logger:          logger,
	}
}

func (uc *ListTopicsUseCase) Execute(ctx context.Context, query ListTopicsQuery) (*ListTopicsResult, error) {
	topics, err := uc.topicRepo.List(ctx, query.IsAdmin)
	if err != nil {
		uc.logger.Errorw("failed to list topics", "error", err)
		return nil, err
	}

	names, err := uc.creatorNames(ctx, topics)
	if err != nil {
		uc.logger.Errorw("failed to resolve topic creators", "error", err)
		return nil, err
	}

	summaries := make([]TopicSummary, 0, len(topics))
	for _, t := range topics {
		name, ok := names[t.CreatorBeneficiaryID()]
		if !ok {
			name = "Unknown User"
		}
		summaries = append(summaries, TopicSummary{
			TopicID:        t.ID(),
			Title:          t.Title(),
			CreatorName:    name,
			Status:         t.Status().String(),
			PostCount:      t.PostCount(),
			LastActivityAt: t.LastActivityAt(),
			CreatedAt:      t.CreatedAt(),
		})
	}

	return &ListTopicsResult{Topics: summaries}, nil
}

func (uc *ListTopicsUseCase) creatorNames(ctx context.Context, topics []*forum.Topic) (map[uint]string, error) {
	ids := make([]uint, 0, len(topics))
	seen := make(map[uint]bool, len(topics))
	for _, t := range topics {
		if !seen[t.CreatorBeneficiaryID()] {
			seen[t.CreatorBeneficiaryID()] = true
			ids = append(ids, t.CreatorBeneficiaryID())
		}
	}

	creators, err := uc.beneficiaryRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[uint]string, len(creators))
	for id, b := range creators {
		names[id] = b.DisplayName()
	}
	return names, nil
}
