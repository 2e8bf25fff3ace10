package usecases

import (
	"context"
	"time"

	"sanad/internal/domain/messaging"
	"sanad/internal/shared/constants"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
)

type ListConversationsQuery struct {
	ExternalUserID string
}

type ConversationSummary struct {
	ConversationID       uint
	Subject              string
	OtherParticipantID   uint
	OtherParticipantName string
	OtherParticipantType string
	LastMessageAt        time.Time
	UnreadCount          int64
}

type ListConversationsResult struct {
	Conversations []ConversationSummary
}

// ListConversationsUseCase returns the caller's inbox. The caller may be
// the beneficiary or the case worker side of a conversation; each row is
// annotated with the other participant.
type ListConversationsUseCase struct {
	conversationRepo messaging.ConversationRepository
	messageRepo      messaging.MessageRepository
	resolver         *ParticipantResolver
	logger           logger.Interface
}

func NewListConversationsUseCase(
	conversationRepo messaging.ConversationRepository,
	messageRepo messaging.MessageRepository,
	resolver *ParticipantResolver,
	logger logger.Interface,
) *ListConversationsUseCase {
	return &ListConversationsUseCase{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		resolver:         resolver,
		logger:           logger,
	}
}

func (uc *ListConversationsUseCase) Execute(ctx context.Context, query ListConversationsQuery) (*ListConversationsResult, error) {
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

	conversations, err := uc.conversationRepo.ListByParticipant(ctx, caller)
	if err != nil {
		uc.logger.Errorw("failed to list conversations", "error", err)
		return nil, err
	}

	counterparts := make(map[uint]messaging.ParticipantRef)
	summaries := make([]ConversationSummary, 0, len(conversations))
	for _, c := range conversations {
		otherKind, otherID := c.Counterpart(caller)
		other, ok := counterparts[otherID]
		if !ok {
			other, err = uc.resolver.ResolveByID(ctx, otherKind, otherID)
			if err != nil {
				uc.logger.Errorw("failed to resolve counterpart", "error", err)
				return nil, err
			}
			counterparts[otherID] = other
		}

		unread, err := uc.messageRepo.CountUnreadExcept(ctx, c.ID(), query.ExternalUserID)
		if err != nil {
			uc.logger.Errorw("failed to count unread messages", "error", err)
			return nil, err
		}

		summaries = append(summaries, ConversationSummary{
			ConversationID:       c.ID(),
			Subject:              c.Subject(),
			OtherParticipantID:   otherID,
			OtherParticipantName: other.Name,
			OtherParticipantType: string(otherKind),
			LastMessageAt:        c.LastMessageAt(),
			UnreadCount:          unread,
		})
	}

	return &ListConversationsResult{Conversations: summaries}, nil
}
