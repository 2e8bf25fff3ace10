package usecases

import (
	"context"
	"time"

	"sanad/internal/domain/messaging"
	"sanad/internal/shared/constants"
	"sanad/internal/shared/db"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
)

type ListMessagesQuery struct {
	ExternalUserID string
	ConversationID uint
}

type MessageDetail struct {
	MessageID  uint
	SenderName string
	Content    string
	IsMine     bool
	IsRead     bool
	CreatedAt  time.Time
}

type ListMessagesResult struct {
	ConversationID       uint
	OtherParticipantName string
	Messages             []MessageDetail
}

// ListMessagesUseCase returns a conversation's messages and marks the
// other side's unread messages as read in the same transaction. The caller
// may be either participant; participancy is re-checked on every call.
type ListMessagesUseCase struct {
	conversationRepo messaging.ConversationRepository
	messageRepo      messaging.MessageRepository
	resolver         *ParticipantResolver
	txManager        db.TxManager
	logger           logger.Interface
}

func NewListMessagesUseCase(
	conversationRepo messaging.ConversationRepository,
	messageRepo messaging.MessageRepository,
	resolver *ParticipantResolver,
	txManager db.TxManager,
	logger logger.Interface,
) *ListMessagesUseCase {
	return &ListMessagesUseCase{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		resolver:         resolver,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, query ListMessagesQuery) (*ListMessagesResult, error) {
	if query.ExternalUserID == "" {
		return nil, errors.NewUnauthorizedError(constants.MsgNotAuthenticated)
	}

	caller, err := uc.resolver.Resolve(ctx, query.ExternalUserID)
	if err != nil {
		uc.logger.Errorw("failed to resolve participant", "error", err)
		return nil, err
	}
	if !caller.IsKnown() {
		return nil, errors.NewNotFoundError(constants.MsgUserProfileNotFound)
	}

	conversation, err := uc.conversationRepo.FindByID(ctx, query.ConversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(caller) {
		return nil, errors.NewForbiddenError("conversation does not belong to you")
	}

	otherKind, otherID := conversation.Counterpart(caller)
	other, err := uc.resolver.ResolveByID(ctx, otherKind, otherID)
	if err != nil {
		uc.logger.Errorw("failed to resolve counterpart", "error", err)
		return nil, err
	}

	var msgs []*messaging.Message
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.messageRepo.MarkReadExcept(txCtx, conversation.ID(), query.ExternalUserID); err != nil {
			return err
		}
		msgs, err = uc.messageRepo.ListByConversation(txCtx, conversation.ID())
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to list messages", "error", err, "conversation_id", conversation.ID())
		return nil, err
	}

	senderNames := make(map[string]string)
	details := make([]MessageDetail, 0, len(msgs))
	for _, m := range msgs {
		name, ok := senderNames[m.SenderExternalUserID()]
		if !ok {
			ref, err := uc.resolver.Resolve(ctx, m.SenderExternalUserID())
			if err != nil {
				uc.logger.Errorw("failed to resolve sender", "error", err)
				return nil, err
			}
			name = ref.Name
			senderNames[m.SenderExternalUserID()] = name
		}

		details = append(details, MessageDetail{
			MessageID:  m.ID(),
			SenderName: name,
			Content:    m.Content(),
			IsMine:     m.SentBy(query.ExternalUserID),
			IsRead:     m.IsRead(),
			CreatedAt:  m.CreatedAt(),
		})
	}

	return &ListMessagesResult{
		ConversationID:       conversation.ID(),
		OtherParticipantName: other.Name,
		Messages:             details,
	}, nil
}
