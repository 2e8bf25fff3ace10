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

type ForumPostRepository struct {
	db     *gorm.DB
	mapper mappers.ForumPostMapper
}

func NewForumPostRepository(db *gorm.DB) *ForumPostRepository {
	return &ForumPostRepository{
		db:     db,
		mapper: mappers.NewForumPostMapper(),
	}
}

func (r *ForumPostRepository) Save(ctx context.Context, p *forum.Post) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *ForumPostRepository) FindByID(ctx context.Context, id uint) (*forum.Post, error) {
	var model models.ForumPostModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("post not found")
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ForumPostRepository) ListByTopic(ctx context.Context, topicID uint, includeHidden bool) ([]*forum.Post, error) {
	var list []*models.ForumPostModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.ForumPostModel{}).Where("topic_id = ?", topicID)
	if !includeHidden {
		query = query.Where("status = ?", vo.PostStatusVisible.String())
	}

	if err := query.Order("created_at ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return r.mapper.ToDomainList(list)
}

func (r *ForumPostRepository) UpdateStatus(ctx context.Context, id uint, status vo.PostStatus) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ForumPostModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status.String(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update post status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("post not found")
	}

	return nil
}
