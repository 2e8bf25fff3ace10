package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"sanad/internal/domain/caseworker"
	"sanad/internal/infrastructure/persistence/mappers"
	"sanad/internal/infrastructure/persistence/models"
	"sanad/internal/shared/db"
	apperrors "sanad/internal/shared/errors"
)

type CaseWorkerRepository struct {
	db     *gorm.DB
	mapper mappers.CaseWorkerMapper
}

func NewCaseWorkerRepository(db *gorm.DB) *CaseWorkerRepository {
	return &CaseWorkerRepository{
		db:     db,
		mapper: mappers.NewCaseWorkerMapper(),
	}
}

func (r *CaseWorkerRepository) Save(ctx context.Context, w *caseworker.CaseWorker) error {
	model := r.mapper.ToModel(w)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save case worker: %w", err)
	}

	return w.SetID(model.ID)
}

func (r *CaseWorkerRepository) FindByID(ctx context.Context, id uint) (*caseworker.CaseWorker, error) {
	var model models.CaseWorkerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("case worker not found")
		}
		return nil, fmt.Errorf("failed to find case worker: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CaseWorkerRepository) FindByExternalUserID(ctx context.Context, externalUserID string) (*caseworker.CaseWorker, error) {
	var model models.CaseWorkerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("external_user_id = ?", externalUserID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("case worker not found")
		}
		return nil, fmt.Errorf("failed to find case worker: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
