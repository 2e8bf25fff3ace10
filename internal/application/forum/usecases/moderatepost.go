package usecases

import (
	"context"

	"sanad/internal/domain/forum"
	vo "sanad/internal/domain/forum/valueobjects"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
)

type ModeratePostCommand struct {
	PostID uint
	Status string
}

type ModeratePostResult struct {
	PostID uint
	Status string
}

type ModeratePostUseCase struct {
	postRepo forum.PostRepository
	logger   logger.Interface
}

func NewModeratePostUseCase(
	postRepo forum.PostRepository,
	logger logger.Interface,
) *ModeratePostUseCase {
	return &ModeratePostUseCase{
		postRepo: postRepo,
		logger:   logger,
	}
}

func (uc *ModeratePostUseCase) Execute(ctx context.Context, cmd ModeratePostCommand) (*ModeratePostResult, error) {
	status, err := vo.NewPostStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	post, err := uc.postRepo.FindByID(ctx, cmd.PostID)
	if err != nil {
		return nil, err
	}

	if post.Status() != status {
		if err := post.Moderate(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.postRepo.UpdateStatus(ctx, post.ID(), status); err != nil {
			uc.logger.Errorw("failed to moderate post", "error", err, "post_id", post.ID())
			return nil, err
		}
	}

	uc.logger.Infow("post moderated", "post_id", post.ID(), "status", status.String())

	return &ModeratePostResult{
		PostID: post.ID(),
		Status: post.Status().String(),
	}, nil
}
