package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"sanad/internal/domain/messaging"
	"sanad/internal/infrastructure/persistence/mappers"
	"sanad/internal/infrastructure/persistence/models"
	"sanad/internal/shared/db"
	apperrors "sanad/internal/shared/errors"
)

type ConversationRepository struct {
	db     *gorm.DB
	mapper mappers.ConversationMapper
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{
		db:     db,
		mapper: mappers.NewConversationMapper(),
	}
}

func (r *ConversationRepository) Save(ctx context.Context, c *messaging.Conversation) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *ConversationRepository) FindByID(ctx context.Context, id uint) (*messaging.Conversation, error) {
	var model models.ConversationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("conversation not found")
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ConversationRepository) ListByParticipant(ctx context.Context, ref messaging.ParticipantRef) ([]*messaging.Conversation, error) {
	var column string
	switch ref.Kind {
	case messaging.ParticipantBeneficiary:
		column = "beneficiary_id"
	case messaging.ParticipantCaseWorker:
		column = "case_worker_id"
	default:
		return nil, fmt.Errorf("cannot list conversations for participant kind %q", ref.Kind)
	}

	var list []*models.ConversationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where(column+" = ?", ref.ProfileID).
		Order("last_message_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	return r.mapper.ToDomainList(list)
}

func (r *ConversationRepository) UpdateLastMessageAt(ctx context.Context, id uint, at time.Time) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ConversationModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"last_message_at": at,
			"updated_at":      at,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update conversation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("conversation not found")
	}

	return nil
}
