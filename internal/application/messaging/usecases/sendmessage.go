package usecases

import (
	"context"
	"time"

	"sanad/internal/domain/messaging"
	"sanad/internal/shared/constants"
	"sanad/internal/shared/db"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
	"sanad/internal/shared/utils"
)

type SendMessageCommand struct {
	ExternalUserID string
	ConversationID uint
	Content        string
}

type SendMessageResult struct {
	MessageID      uint
	ConversationID uint
	CreatedAt      time.Time
}

// SendMessageUseCase appends a message and bumps the conversation's
// lastMessageAt in one transaction. Either participant of the conversation
// may send; participancy is re-checked on every call.
type SendMessageUseCase struct {
	conversationRepo messaging.ConversationRepository
	messageRepo      messaging.MessageRepository
	resolver         *ParticipantResolver
	txManager        db.TxManager
	logger           logger.Interface
}

func NewSendMessageUseCase(
	conversationRepo messaging.ConversationRepository,
	messageRepo messaging.MessageRepository,
	resolver *ParticipantResolver,
	txManager db.TxManager,
	logger logger.Interface,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		resolver:         resolver,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) (*SendMessageResult, error) {
	if cmd.ExternalUserID == "" {
		return nil, errors.NewUnauthorizedError(constants.MsgNotAuthenticated)
	}

	content := utils.SanitizeText(cmd.Content)
	if len(content) < 1 {
		return nil, errors.NewValidationError("message cannot be empty")
	}
	if len(content) > 5000 {
		return nil, errors.NewValidationError("message exceeds maximum length of 5000 characters")
	}

	caller, err := uc.resolver.Resolve(ctx, cmd.ExternalUserID)
	if err != nil {
		uc.logger.Errorw("failed to resolve participant", "error", err)
		return nil, err
	}
	if !caller.IsKnown() {
		return nil, errors.NewNotFoundError(constants.MsgUserProfileNotFound)
	}

	conversation, err := uc.conversationRepo.FindByID(ctx, cmd.ConversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(caller) {
		return nil, errors.NewForbiddenError("conversation does not belong to you")
	}

	message, err := messaging.NewMessage(conversation.ID(), cmd.ExternalUserID, content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.messageRepo.Save(txCtx, message); err != nil {
			return err
		}
		return uc.conversationRepo.UpdateLastMessageAt(txCtx, conversation.ID(), message.CreatedAt())
	})
	if err != nil {
		uc.logger.Errorw("failed to send message", "error", err, "conversation_id", conversation.ID())
		return nil, err
	}

	uc.logger.Infow("message sent", "message_id", message.ID(), "conversation_id", conversation.ID())

	return &SendMessageResult{
		MessageID:      message.ID(),
		ConversationID: conversation.ID(),
		CreatedAt:      message.CreatedAt(),
	}, nil
}
