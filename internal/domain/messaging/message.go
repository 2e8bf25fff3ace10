package messaging

import (
	"fmt"
	"time"
)

// Message belongs to a conversation. The sender is identified by the
// external (identity provider) user ID rather than an internal row ID,
// because either side of the conversation may send.
type Message struct {
	id                   uint
	conversationID       uint
	senderExternalUserID string
	content              string
	isRead               bool
	createdAt            time.Time
}

func NewMessage(conversationID uint, senderExternalUserID, content string) (*Message, error) {
	if conversationID == 0 {
		return nil, fmt.Errorf("conversation ID is required")
	}
	if senderExternalUserID == "" {
		return nil, fmt.Errorf("sender external user ID is required")
	}
	if len(content) < 1 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("content exceeds maximum length of 5000 characters")
	}

	return &Message{
		conversationID:       conversationID,
		senderExternalUserID: senderExternalUserID,
		content:              content,
		isRead:               false,
		createdAt:            time.Now(),
	}, nil
}

func ReconstructMessage(
	id uint,
	conversationID uint,
	senderExternalUserID, content string,
	isRead bool,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}

	return &Message{
		id:                   id,
		conversationID:       conversationID,
		senderExternalUserID: senderExternalUserID,
		content:              content,
		isRead:               isRead,
		createdAt:            createdAt,
	}, nil
}

func (m *Message) ID() uint                     { return m.id }
func (m *Message) ConversationID() uint         { return m.conversationID }
func (m *Message) SenderExternalUserID() string { return m.senderExternalUserID }
func (m *Message) Content() string              { return m.content }
func (m *Message) IsRead() bool                 { return m.isRead }
func (m *Message) CreatedAt() time.Time         { return m.createdAt }

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

// SentBy reports whether the message was authored by the given external
// user.
func (m *Message) SentBy(externalUserID string) bool {
	return m.senderExternalUserID == externalUserID
}
