package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"sanad/internal/domain/application"
	vo "sanad/internal/domain/application/valueobjects"
	"sanad/internal/infrastructure/persistence/models"
)

type ApplicationMapper interface {
	ToModel(entity *application.Application) (*models.ApplicationModel, error)
	ToDomain(model *models.ApplicationModel) (*application.Application, error)
	ToDomainList(models []*models.ApplicationModel) ([]*application.Application, error)
}

type applicationMapper struct{}

func NewApplicationMapper() ApplicationMapper {
	return &applicationMapper{}
}

func (m *applicationMapper) ToModel(entity *application.Application) (*models.ApplicationModel, error) {
	if entity == nil {
		return nil, nil
	}

	formData, err := json.Marshal(entity.FormData())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal form data: %w", err)
	}

	return &models.ApplicationModel{
		ID:            entity.ID(),
		BeneficiaryID: entity.BeneficiaryID(),
		Type:          entity.ApplicationType().String(),
		Status:        entity.Status().String(),
		FormData:      datatypes.JSON(formData),
		SubmittedAt:   entity.SubmittedAt(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

func (m *applicationMapper) ToDomain(model *models.ApplicationModel) (*application.Application, error) {
	if model == nil {
		return nil, nil
	}

	applicationType, err := vo.NewApplicationType(model.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to map application type: %w", err)
	}

	status, err := vo.NewApplicationStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map application status: %w", err)
	}

	var formData map[string]interface{}
	if len(model.FormData) > 0 {
		if err := json.Unmarshal(model.FormData, &formData); err != nil {
			return nil, fmt.Errorf("failed to unmarshal form data: %w", err)
		}
	}

	entity, err := application.ReconstructApplication(
		model.ID,
		model.BeneficiaryID,
		applicationType,
		status,
		formData,
		model.SubmittedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct application: %w", err)
	}

	return entity, nil
}

func (m *applicationMapper) ToDomainList(list []*models.ApplicationModel) ([]*application.Application, error) {
	entities := make([]*application.Application, 0, len(list))
	for _, model := range list {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
