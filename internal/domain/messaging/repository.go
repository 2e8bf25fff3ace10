package messaging

import (
	"context"
	"time"
)

// ConversationRepository persists conversations. Implementations must
// honor the transaction carried in ctx when one is present.
type ConversationRepository interface {
	Save(ctx context.Context, conversation *Conversation) error
	FindByID(ctx context.Context, id uint) (*Conversation, error)
	// ListByParticipant returns the conversations where the participant is
	// the designated beneficiary or case worker, depending on its kind,
	// ordered by lastMessageAt descending.
	ListByParticipant(ctx context.Context, ref ParticipantRef) ([]*Conversation, error)
	UpdateLastMessageAt(ctx context.Context, id uint, at time.Time) error
}

// MessageRepository persists messages within conversations.
type MessageRepository interface {
	Save(ctx context.Context, message *Message) error
	// ListByConversation returns messages ordered by createdAt ascending.
	ListByConversation(ctx context.Context, conversationID uint) ([]*Message, error)
	// MarkReadExcept flags as read every unread message in the
	// conversation that was not sent by the given external user.
	MarkReadExcept(ctx context.Context, conversationID uint, senderExternalUserID string) error
	// CountUnreadExcept counts unread messages not sent by the given
	// external user, used for inbox badges.
	CountUnreadExcept(ctx context.Context, conversationID uint, senderExternalUserID string) (int64, error)
}
