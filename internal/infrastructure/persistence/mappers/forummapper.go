package mappers

import (
	"fmt"

	"sanad/internal/domain/forum"
	vo "sanad/internal/domain/forum/valueobjects"
	"sanad/internal/infrastructure/persistence/models"
)

type ForumTopicMapper interface {
	ToModel(entity *forum.Topic) *models.ForumTopicModel
	ToDomain(model *models.ForumTopicModel) (*forum.Topic, error)
	ToDomainList(models []*models.ForumTopicModel) ([]*forum.Topic, error)
}

type forumTopicMapper struct{}

func NewForumTopicMapper() ForumTopicMapper {
	return &forumTopicMapper{}
}

func (m *forumTopicMapper) ToModel(entity *forum.Topic) *models.ForumTopicModel {
	if entity == nil {
		return nil
	}

	return &models.ForumTopicModel{
		ID:                   entity.ID(),
		Title:                entity.Title(),
		CreatorBeneficiaryID: entity.CreatorBeneficiaryID(),
		Status:               entity.Status().String(),
		PostCount:            entity.PostCount(),
		LastActivityAt:       entity.LastActivityAt(),
		CreatedAt:            entity.CreatedAt(),
		UpdatedAt:            entity.UpdatedAt(),
	}
}

func (m *forumTopicMapper) ToDomain(model *models.ForumTopicModel) (*forum.Topic, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewTopicStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map topic status: %w", err)
	}

	entity, err := forum.ReconstructTopic(
		model.ID,
		model.Title,
		model.CreatorBeneficiaryID,
		status,
		model.PostCount,
		model.LastActivityAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct topic: %w", err)
	}

	return entity, nil
}

func (m *forumTopicMapper) ToDomainList(list []*models.ForumTopicModel) ([]*forum.Topic, error) {
	entities := make([]*forum.Topic, 0, len(list))
	for _, model := range list {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

type ForumPostMapper interface {
	ToModel(entity *forum.Post) *models.ForumPostModel
	ToDomain(model *models.ForumPostModel) (*forum.Post, error)
	ToDomainList(models []*models.ForumPostModel) ([]*forum.Post, error)
}

type forumPostMapper struct{}

func NewForumPostMapper() ForumPostMapper {
	return &forumPostMapper{}
}

func (m *forumPostMapper) ToModel(entity *forum.Post) *models.ForumPostModel {
	if entity == nil {
		return nil
	}

	return &models.ForumPostModel{
		ID:                   entity.ID(),
		TopicID:              entity.TopicID(),
		CreatorBeneficiaryID: entity.CreatorBeneficiaryID(),
		Content:              entity.Content(),
		Status:               entity.Status().String(),
		CreatedAt:            entity.CreatedAt(),
		UpdatedAt:            entity.UpdatedAt(),
	}
}

func (m *forumPostMapper) ToDomain(model *models.ForumPostModel) (*forum.Post, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewPostStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map post status: %w", err)
	}

	entity, err := forum.ReconstructPost(
		model.ID,
		model.TopicID,
		model.CreatorBeneficiaryID,
		model.Content,
		status,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct post: %w", err)
	}

	return entity, nil
}

func (m *forumPostMapper) ToDomainList(list []*models.ForumPostModel) ([]*forum.Post, error) {
	entities := make([]*forum.Post, 0, len(list))
	for _, model := range list {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
