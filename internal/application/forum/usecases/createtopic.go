package usecases

import (
	"context"
	"time"

	"sanad/internal/domain/beneficiary"
	"sanad/internal/domain/forum"
	"sanad/internal/shared/constants"
	"sanad/internal/shared/db"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
	"sanad/internal/shared/utils"
)

type CreateTopicCommand struct {
	ExternalUserID string
	Title          string
	Content        string
}

type CreateTopicResult struct {
	TopicID   uint
	Title     string
	Status    string
	CreatedAt time.Time
}

// CreateTopicUseCase creates a topic together with its seed post in one
// transaction. The topic's post counter already accounts for the seed.
type CreateTopicUseCase struct {
	topicRepo       forum.TopicRepository
	postRepo        forum.PostRepository
	beneficiaryRepo beneficiary.Repository
	txManager       db.TxManager
	logger          logger.Interface
}

func NewCreateTopicUseCase(
	topicRepo forum.TopicRepository,
	postRepo forum.PostRepository,
	beneficiaryRepo beneficiary.Repository,
	txManager db.TxManager,
	logger logger.Interface,
) *CreateTopicUseCase {
	return &CreateTopicUseCase{
		topicRepo:       topicRepo,
		postRepo:        postRepo,
		beneficiaryRepo: beneficiaryRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

func (uc *CreateTopicUseCase) Execute(ctx context.Context, cmd CreateTopicCommand) (*CreateTopicResult, error) {
	if cmd.ExternalUserID == "" {
		return nil, errors.NewUnauthorizedError(constants.MsgNotAuthenticated)
	}

	title := utils.SanitizeText(cmd.Title)
	content := utils.SanitizeText(cmd.Content)

	if len(title) < 5 {
		return nil, errors.NewValidationError("title must be at least 5 characters")
	}
	if len(title) > 255 {
		return nil, errors.NewValidationError("title exceeds maximum length of 255 characters")
	}
	if len(content) < 10 {
		return nil, errors.NewValidationError("content must be at least 10 characters")
	}

	b, err := uc.beneficiaryRepo.FindByExternalUserID(ctx, cmd.ExternalUserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(constants.MsgProfileNotFound)
		}
		uc.logger.Errorw("failed to load beneficiary profile", "error", err)
		return nil, err
	}

	topic, err := forum.NewTopic(title, b.ID())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.topicRepo.Save(txCtx, topic); err != nil {
			return err
		}

		seed, err := forum.NewPost(topic.ID(), b.ID(), content)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		return uc.postRepo.Save(txCtx, seed)
	})
	if err != nil {
		uc.logger.Errorw("failed to create topic", "error", err)
		return nil, err
	}

	uc.logger.Infow("topic created", "topic_id", topic.ID(), "beneficiary_id", b.ID())

	return &CreateTopicResult{
		TopicID:   topic.ID(),
		Title:     topic.Title(),
		Status:    topic.Status().String(),
		CreatedAt: topic.CreatedAt(),
	}, nil
}
