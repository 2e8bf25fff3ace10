package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sanad/internal/domain/messaging"
	"sanad/internal/infrastructure/persistence/mappers"
	"sanad/internal/infrastructure/persistence/models"
	"sanad/internal/shared/db"
)

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.MessageMapper
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewMessageMapper(),
	}
}

func (r *MessageRepository) Save(ctx context.Context, m *messaging.Message) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID uint) ([]*messaging.Message, error) {
	var list []*models.MessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return r.mapper.ToDomainList(list)
}

func (r *MessageRepository) MarkReadExcept(ctx context.Context, conversationID uint, senderExternalUserID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MessageModel{}).
		Where("conversation_id = ? AND sender_external_user_id <> ? AND is_read = ?", conversationID, senderExternalUserID, false).
		Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark messages read: %w", result.Error)
	}

	return nil
}

func (r *MessageRepository) CountUnreadExcept(ctx context.Context, conversationID uint, senderExternalUserID string) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.MessageModel{}).
		Where("conversation_id = ? AND sender_external_user_id <> ? AND is_read = ?", conversationID, senderExternalUserID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}

	return count, nil
}
