package mappers

import (
	"fmt"

	"sanad/internal/domain/beneficiary"
	"sanad/internal/infrastructure/persistence/models"
)

type BeneficiaryMapper interface {
	ToModel(entity *beneficiary.Beneficiary) *models.BeneficiaryModel
	ToDomain(model *models.BeneficiaryModel) (*beneficiary.Beneficiary, error)
	ToDomainList(models []*models.BeneficiaryModel) ([]*beneficiary.Beneficiary, error)
}

type beneficiaryMapper struct{}

func NewBeneficiaryMapper() BeneficiaryMapper {
	return &beneficiaryMapper{}
}

func (m *beneficiaryMapper) ToModel(entity *beneficiary.Beneficiary) *models.BeneficiaryModel {
	if entity == nil {
		return nil
	}

	return &models.BeneficiaryModel{
		ID:             entity.ID(),
		ExternalUserID: entity.ExternalUserID(),
		FirstName:      entity.FirstName(),
		LastName:       entity.LastName(),
		PhoneNumber:    entity.PhoneNumber(),
		Address:        entity.Address(),
		Status:         entity.Status().String(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *beneficiaryMapper) ToDomain(model *models.BeneficiaryModel) (*beneficiary.Beneficiary, error) {
	if model == nil {
		return nil, nil
	}

	status, err := beneficiary.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map beneficiary status: %w", err)
	}

	entity, err := beneficiary.ReconstructBeneficiary(
		model.ID,
		model.ExternalUserID,
		model.FirstName,
		model.LastName,
		model.PhoneNumber,
		model.Address,
		status,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct beneficiary: %w", err)
	}

	return entity, nil
}

func (m *beneficiaryMapper) ToDomainList(list []*models.BeneficiaryModel) ([]*beneficiary.Beneficiary, error) {
	entities := make([]*beneficiary.Beneficiary, 0, len(list))
	for _, model := range list {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
