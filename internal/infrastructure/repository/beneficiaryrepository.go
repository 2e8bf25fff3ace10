package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"sanad/internal/domain/beneficiary"
	"sanad/internal/infrastructure/persistence/mappers"
	"sanad/internal/infrastructure/persistence/models"
	"sanad/internal/shared/db"
	apperrors "sanad/internal/shared/errors"
)

type BeneficiaryRepository struct {
	db     *gorm.DB
	mapper mappers.BeneficiaryMapper
}

func NewBeneficiaryRepository(db *gorm.DB) *BeneficiaryRepository {
	return &BeneficiaryRepository{
		db:     db,
		mapper: mappers.NewBeneficiaryMapper(),
	}
}

func (r *BeneficiaryRepository) Save(ctx context.Context, b *beneficiary.Beneficiary) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save beneficiary: %w", err)
	}

	return b.SetID(model.ID)
}

func (r *BeneficiaryRepository) Update(ctx context.Context, b *beneficiary.Beneficiary) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.BeneficiaryModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"first_name":   model.FirstName,
			"last_name":    model.LastName,
			"phone_number": model.PhoneNumber,
			"address":      model.Address,
			"status":       model.Status,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update beneficiary: %w", result.Error)
	}

	return nil
}

func (r *BeneficiaryRepository) FindByID(ctx context.Context, id uint) (*beneficiary.Beneficiary, error) {
	var model models.BeneficiaryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("beneficiary not found")
		}
		return nil, fmt.Errorf("failed to find beneficiary: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *BeneficiaryRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]*beneficiary.Beneficiary, error) {
	result := make(map[uint]*beneficiary.Beneficiary, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var list []*models.BeneficiaryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find beneficiaries: %w", err)
	}

	for _, model := range list {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, err
		}
		result[entity.ID()] = entity
	}

	return result, nil
}

func (r *BeneficiaryRepository) FindByExternalUserID(ctx context.Context, externalUserID string) (*beneficiary.Beneficiary, error) {
	var model models.BeneficiaryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("external_user_id = ?", externalUserID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("beneficiary not found")
		}
		return nil, fmt.Errorf("failed to find beneficiary: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
