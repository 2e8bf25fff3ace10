package mappers

import (
	"fmt"

	"sanad/internal/domain/information"
	"sanad/internal/infrastructure/persistence/models"
)

type BenefitMapper interface {
	ToModel(entity *information.Benefit) *models.BenefitModel
	ToDomain(model *models.BenefitModel) (*information.Benefit, error)
	ToDomainList(models []*models.BenefitModel) ([]*information.Benefit, error)
}

type benefitMapper struct{}

func NewBenefitMapper() BenefitMapper {
	return &benefitMapper{}
}

func (m *benefitMapper) ToModel(entity *information.Benefit) *models.BenefitModel {
	if entity == nil {
		return nil
	}

	return &models.BenefitModel{
		ID:          entity.ID(),
		Slug:        entity.Slug(),
		Title:       entity.Title(),
		Description: entity.Description(),
		Category:    entity.Category(),
		Language:    entity.Language().String(),
		IsActive:    entity.IsActive(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *benefitMapper) ToDomain(model *models.BenefitModel) (*information.Benefit, error) {
	if model == nil {
		return nil, nil
	}

	language, err := information.NewLanguage(model.Language)
	if err != nil {
		return nil, fmt.Errorf("failed to map benefit language: %w", err)
	}

	entity, err := information.ReconstructBenefit(
		model.ID,
		model.Slug,
		model.Title,
		model.Description,
		model.Category,
		language,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct benefit: %w", err)
	}

	return entity, nil
}

func (m *benefitMapper) ToDomainList(list []*models.BenefitModel) ([]*information.Benefit, error) {
	entities := make([]*information.Benefit, 0, len(list))
	for _, model := range list {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

type FAQMapper interface {
	ToModel(entity *information.FAQ) *models.FAQModel
	ToDomain(model *models.FAQModel) (*information.FAQ, error)
	ToDomainList(models []*models.FAQModel) ([]*information.FAQ, error)
}

type faqMapper struct{}

func NewFAQMapper() FAQMapper {
	return &faqMapper{}
}

func (m *faqMapper) ToModel(entity *information.FAQ) *models.FAQModel {
	if entity == nil {
		return nil
	}

	return &models.FAQModel{
		ID:        entity.ID(),
		Question:  entity.Question(),
		Answer:    entity.Answer(),
		Language:  entity.Language().String(),
		SortOrder: entity.SortOrder(),
		IsActive:  entity.IsActive(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *faqMapper) ToDomain(model *models.FAQModel) (*information.FAQ, error) {
	if model == nil {
		return nil, nil
	}

	language, err := information.NewLanguage(model.Language)
	if err != nil {
		return nil, fmt.Errorf("failed to map faq language: %w", err)
	}

	entity, err := information.ReconstructFAQ(
		model.ID,
		model.Question,
		model.Answer,
		language,
		model.SortOrder,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct faq: %w", err)
	}

	return entity, nil
}

func (m *faqMapper) ToDomainList(list []*models.FAQModel) ([]*information.FAQ, error) {
	entities := make([]*information.FAQ, 0, len(list))
	for _, model := range list {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
