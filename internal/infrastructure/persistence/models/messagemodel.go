package models

import (
	"time"

	"sanad/internal/shared/constants"
)

type MessageModel struct {
	ID                   uint   `gorm:"primaryKey"`
	ConversationID       uint   `gorm:"not null;index"`
	SenderExternalUserID string `gorm:"size:256;not null;index"`
	Content              string `gorm:"type:text;not null"`
	IsRead               bool   `gorm:"not null;default:false"`
	CreatedAt            time.Time

	Conversation *ConversationModel `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
}

func (MessageModel) TableName() string {
	return constants.TableMessages
}
