package mappers

import (
	"fmt"

	"sanad/internal/domain/caseworker"
	"sanad/internal/infrastructure/persistence/models"
)

type CaseWorkerMapper interface {
	ToModel(entity *caseworker.CaseWorker) *models.CaseWorkerModel
	ToDomain(model *models.CaseWorkerModel) (*caseworker.CaseWorker, error)
}

type caseWorkerMapper struct{}

func NewCaseWorkerMapper() CaseWorkerMapper {
	return &caseWorkerMapper{}
}

func (m *caseWorkerMapper) ToModel(entity *caseworker.CaseWorker) *models.CaseWorkerModel {
	if entity == nil {
		return nil
	}

	return &models.CaseWorkerModel{
		ID:             entity.ID(),
		ExternalUserID: entity.ExternalUserID(),
		FirstName:      entity.FirstName(),
		LastName:       entity.LastName(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *caseWorkerMapper) ToDomain(model *models.CaseWorkerModel) (*caseworker.CaseWorker, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := caseworker.ReconstructCaseWorker(
		model.ID,
		model.ExternalUserID,
		model.FirstName,
		model.LastName,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct case worker: %w", err)
	}

	return entity, nil
}
