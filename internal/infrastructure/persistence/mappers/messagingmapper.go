package mappers

import (
	"fmt"

	"sanad/internal/domain/messaging"
	"sanad/internal/infrastructure/persistence/models"
)

type ConversationMapper interface {
	ToModel(entity *messaging.Conversation) *models.ConversationModel
	ToDomain(model *models.ConversationModel) (*messaging.Conversation, error)
	ToDomainList(models []*models.ConversationModel) ([]*messaging.Conversation, error)
}

type conversationMapper struct{}

func NewConversationMapper() ConversationMapper {
	return &conversationMapper{}
}

func (m *conversationMapper) ToModel(entity *messaging.Conversation) *models.ConversationModel {
	if entity == nil {
		return nil
	}

	return &models.ConversationModel{
		ID:            entity.ID(),
		BeneficiaryID: entity.BeneficiaryID(),
		CaseWorkerID:  entity.CaseWorkerID(),
		Subject:       entity.Subject(),
		LastMessageAt: entity.LastMessageAt(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

func (m *conversationMapper) ToDomain(model *models.ConversationModel) (*messaging.Conversation, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := messaging.ReconstructConversation(
		model.ID,
		model.BeneficiaryID,
		model.CaseWorkerID,
		model.Subject,
		model.LastMessageAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct conversation: %w", err)
	}

	return entity, nil
}

func (m *conversationMapper) ToDomainList(list []*models.ConversationModel) ([]*messaging.Conversation, error) {
	entities := make([]*messaging.Conversation, 0, len(list))
	for _, model := range list {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

type MessageMapper interface {
	ToModel(entity *messaging.Message) *models.MessageModel
	ToDomain(model *models.MessageModel) (*messaging.Message, error)
	ToDomainList(models []*models.MessageModel) ([]*messaging.Message, error)
}

type messageMapper struct{}

func NewMessageMapper() MessageMapper {
	return &messageMapper{}
}

func (m *messageMapper) ToModel(entity *messaging.Message) *models.MessageModel {
	if entity == nil {
		return nil
	}

	return &models.MessageModel{
		ID:                   entity.ID(),
		ConversationID:       entity.ConversationID(),
		SenderExternalUserID: entity.SenderExternalUserID(),
		Content:              entity.Content(),
		IsRead:               entity.IsRead(),
		CreatedAt:            entity.CreatedAt(),
	}
}

func (m *messageMapper) ToDomain(model *models.MessageModel) (*messaging.Message, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := messaging.ReconstructMessage(
		model.ID,
		model.ConversationID,
		model.SenderExternalUserID,
		model.Content,
		model.IsRead,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct message: %w", err)
	}

	return entity, nil
}

func (m *messageMapper) ToDomainList(list []*models.MessageModel) ([]*messaging.Message, error) {
	entities := make([]*messaging.Message, 0, len(list))
	for _, model := range list {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
