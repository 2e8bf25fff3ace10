package messaging

import (
	"time"

	"sanad/internal/application/messaging/usecases"
)

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=5000"`
}

type ParticipantResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type ConversationResponse struct {
	ID               uint                `json:"id"`
	Subject          string              `json:"subject,omitempty"`
	OtherParticipant ParticipantResponse `json:"otherParticipant"`
	LastMessageAt    time.Time           `json:"lastMessageAt"`
	UnreadCount      int64               `json:"unreadCount"`
}

type MessageResponse struct {
	ID         uint      `json:"id"`
	SenderName string    `json:"senderName"`
	Content    string    `json:"content"`
	IsMine     bool      `json:"isMine"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

type MessageThreadResponse struct {
	ConversationID       uint              `json:"conversationId"`
	OtherParticipantName string            `json:"otherParticipantName"`
	Messages             []MessageResponse `json:"messages"`
}

func toConversationResponses(result *usecases.ListConversationsResult) []ConversationResponse {
	responses := make([]ConversationResponse, 0, len(result.Conversations))
	for _, conv := range result.Conversations {
		responses = append(responses, ConversationResponse{
			ID:      conv.ConversationID,
			Subject: conv.Subject,
			OtherParticipant: ParticipantResponse{
				ID:   conv.OtherParticipantID,
				Name: conv.OtherParticipantName,
				Type: conv.OtherParticipantType,
			},
			LastMessageAt: conv.LastMessageAt,
			UnreadCount:   conv.UnreadCount,
		})
	}
	return responses
}

func toMessageThreadResponse(result *usecases.ListMessagesResult) MessageThreadResponse {
	responses := make([]MessageResponse, 0, len(result.Messages))
	for _, m := range result.Messages {
		responses = append(responses, MessageResponse{
			ID:         m.MessageID,
			SenderName: m.SenderName,
			Content:    m.Content,
			IsMine:     m.IsMine,
			IsRead:     m.IsRead,
			CreatedAt:  m.CreatedAt,
		})
	}
	return MessageThreadResponse{
		ConversationID:       result.ConversationID,
		OtherParticipantName: result.OtherParticipantName,
		Messages:             responses,
	}
}
