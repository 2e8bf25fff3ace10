package usecases

import (
	"context"

	"sanad/internal/domain/forum"
	vo "sanad/internal/domain/forum/valueobjects"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
)

type ModerateTopicCommand struct {
	TopicID uint
	Status  string
}

type ModerateTopicResult struct {
	TopicID uint
	Status  string
}

// ModerateTopicUseCase applies an admin moderation action to a topic.
// Re-applying the current status is a no-op rather than an error.
type ModerateTopicUseCase struct {
	topicRepo forum.TopicRepository
	logger    logger.Interface
}

func NewModerateTopicUseCase(
	topicRepo forum.TopicRepository,
	logger logger.Interface,
) *ModerateTopicUseCase {
	return &ModerateTopicUseCase{
		topicRepo: topicRepo,
		logger:    logger,
	}
}

func (uc *ModerateTopicUseCase) Execute(ctx context.Context, cmd ModerateTopicCommand) (*ModerateTopicResult, error) {
	status, err := vo.NewTopicStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	topic, err := uc.topicRepo.FindByID(ctx, cmd.TopicID)
	if err != nil {
		return nil, err
	}

	if topic.Status() != status {
		if err := topic.Moderate(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.topicRepo.UpdateStatus(ctx, topic.ID(), status); err != nil {
			uc.logger.Errorw("failed to moderate topic", "error", err, "topic_id", topic.ID())
			return nil, err
		}
	}

	uc.logger.Infow("topic moderated", "topic_id", topic.ID(), "status", status.String())

	return &ModerateTopicResult{
		TopicID: topic.ID(),
		Status:  topic.Status().String(),
	}, nil
}
