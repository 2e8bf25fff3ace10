package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sanad/internal/domain/information"
	"sanad/internal/infrastructure/persistence/mappers"
	"sanad/internal/infrastructure/persistence/models"
	"sanad/internal/shared/db"
)

type BenefitRepository struct {
	db     *gorm.DB
	mapper mappers.BenefitMapper
}

func NewBenefitRepository(db *gorm.DB) *BenefitRepository {
	return &BenefitRepository{
		db:     db,
		mapper: mappers.NewBenefitMapper(),
	}
}

func (r *BenefitRepository) Save(ctx context.Context, b *information.Benefit) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save benefit: %w", err)
	}

	return b.SetID(model.ID)
}

func (r *BenefitRepository) ListByLanguage(ctx context.Context, language information.Language) ([]*information.Benefit, error) {
	var list []*models.BenefitModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("language = ?", language.String()).
		Where("is_active = ?", true).
		Order("title ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list benefits: %w", err)
	}

	return r.mapper.ToDomainList(list)
}

func (r *BenefitRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.BenefitModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count benefits: %w", err)
	}
	return count, nil
}

type FAQRepository struct {
	db     *gorm.DB
	mapper mappers.FAQMapper
}

func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{
		db:     db,
		mapper: mappers.NewFAQMapper(),
	}
}

func (r *FAQRepository) Save(ctx context.Context, f *information.FAQ) error {
	model := r.mapper.ToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save faq: %w", err)
	}

	return f.SetID(model.ID)
}

func (r *FAQRepository) ListByLanguage(ctx context.Context, language information.Language) ([]*information.FAQ, error) {
	var list []*models.FAQModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("language = ?", language.String()).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Order("question ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}

	return r.mapper.ToDomainList(list)
}

func (r *FAQRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.FAQModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count faqs: %w", err)
	}
	return count, nil
}
