package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"sanad/internal/domain/forum"
	vo "sanad/internal/domain/forum/valueobjects"
	"sanad/internal/infrastructure/persistence/mappers"
	"sanad/internal/infrastructure/persistence/models"
	"sanad/internal/shared/db"
	apperrors "sanad/internal/shared/errors"
)

type ForumTopicRepository struct {
	db     *gorm.DB
	mapper mappers.ForumTopicMapper
}

func NewForumTopicRepository(db *gorm.DB) *ForumTopicRepository {
	return &ForumTopicRepository{
		db:     db,
		mapper: mappers.NewForumTopicMapper(),
	}
}

func (r *ForumTopicRepository) Save(ctx context.Context, t *forum.Topic) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save topic: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *ForumTopicRepository) FindByID(ctx context.Context, id uint) (*forum.Topic, error) {
	var model models.ForumTopicModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("topic not found")
		}
		return nil, fmt.Errorf("failed to find topic: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ForumTopicRepository) List(ctx context.Context, includeAll bool) ([]*forum.Topic, error) {
	var list []*models.ForumTopicModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.ForumTopicModel{})
	if !includeAll {
		query = query.Where("status = ?", vo.TopicStatusOpen.String())
	}

	if err := query.Order("last_activity_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}

	return r.mapper.ToDomainList(list)
}

func (r *ForumTopicRepository) UpdateStatus(ctx context.Context, id uint, status vo.TopicStatus) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ForumTopicModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status.String(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update topic status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("topic not found")
	}

	return nil
}

func (r *ForumTopicRepository) RecordReply(ctx context.Context, id uint, at time.Time) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ForumTopicModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"post_count":       gorm.Expr("post_count + ?", 1),
			"last_activity_at": at,
			"updated_at":       at,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to record reply: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("topic not found")
	}

	return nil
}
