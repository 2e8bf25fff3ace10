package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"sanad/internal/domain/application"
	"sanad/internal/infrastructure/persistence/mappers"
	"sanad/internal/infrastructure/persistence/models"
	"sanad/internal/shared/db"
	apperrors "sanad/internal/shared/errors"
)

type ApplicationRepository struct {
	db     *gorm.DB
	mapper mappers.ApplicationMapper
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{
		db:     db,
		mapper: mappers.NewApplicationMapper(),
	}
}

func (r *ApplicationRepository) Save(ctx context.Context, a *application.Application) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save application: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id uint) (*application.Application, error) {
	var model models.ApplicationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("application not found")
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ApplicationRepository) ListByBeneficiary(ctx context.Context, beneficiaryID uint) ([]*application.Application, error) {
	var list []*models.ApplicationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("beneficiary_id = ?", beneficiaryID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return r.mapper.ToDomainList(list)
}
