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

type CreatePostCommand struct {
	ExternalUserID string
	TopicID        uint
	Content        string
}

type CreatePostResult struct {
	PostID    uint
	TopicID   uint
	CreatedAt time.Time
}

// CreatePostUseCase appends a reply to an open topic. The post row and the
// topic's counter update are committed in the same transaction.
type CreatePostUseCase struct {
	topicRepo       forum.TopicRepository
	postRepo        forum.PostRepository
	beneficiaryRepo beneficiary.Repository
	txManager       db.TxManager
	logger          logger.Interface
}

func NewCreatePostUseCase(
	topicRepo forum.TopicRepository,
	postRepo forum.PostRepository,
	beneficiaryRepo beneficiary.Repository,
	txManager db.TxManager,
	logger logger.Interface,
) *CreatePostUseCase {
	return &CreatePostUseCase{
		topicRepo:       topicRepo,
		postRepo:        postRepo,
		beneficiaryRepo: beneficiaryRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, cmd CreatePostCommand) (*CreatePostResult, error) {
	if cmd.ExternalUserID == "" {
		return nil, errors.NewUnauthorizedError(constants.MsgNotAuthenticated)
	}

	content := utils.SanitizeText(cmd.Content)
	if len(content) < 1 {
		return nil, errors.NewValidationError("post cannot be empty")
	}

	b, err := uc.beneficiaryRepo.FindByExternalUserID(ctx, cmd.ExternalUserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(constants.MsgProfileNotFound)
		}
		uc.logger.Errorw("failed to load beneficiary profile", "error", err)
		return nil, err
	}

	topic, err := uc.topicRepo.FindByID(ctx, cmd.TopicID)
	if err != nil {
		return nil, err
	}
	if !topic.Status().AcceptsPosts() {
		return nil, errors.NewForbiddenError("topic is closed")
	}

	post, err := forum.NewPost(topic.ID(), b.ID(), content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.postRepo.Save(txCtx, post); err != nil {
			return err
		}
		return uc.topicRepo.RecordReply(txCtx, topic.ID(), post.CreatedAt())
	})
	if err != nil {
		uc.logger.Errorw("failed to create post", "error", err, "topic_id", topic.ID())
		return nil, err
	}

	uc.logger.Infow("post created", "post_id", post.ID(), "topic_id", topic.ID())

	return &CreatePostResult{
		PostID:    post.ID(),
		TopicID:   topic.ID(),
		CreatedAt: post.CreatedAt(),
	}, nil
}
