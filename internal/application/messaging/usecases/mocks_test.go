package usecases

import (
	"context"
	"time"

	"sanad/internal/domain/beneficiary"
	"sanad/internal/domain/caseworker"
	"sanad/internal/domain/messaging"
	"sanad/internal/shared/logger"
)

type mockConversationRepository struct {
	SaveFunc                func(ctx context.Context, conversation *messaging.Conversation) error
	FindByIDFunc            func(ctx context.Context, id uint) (*messaging.Conversation, error)
	ListByParticipantFunc   func(ctx context.Context, ref messaging.ParticipantRef) ([]*messaging.Conversation, error)
	UpdateLastMessageAtFunc func(ctx context.Context, id uint, at time.Time) error
}

func (m *mockConversationRepository) Save(ctx context.Context, conversation *messaging.Conversation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, conversation)
	}
	return nil
}

func (m *mockConversationRepository) FindByID(ctx context.Context, id uint) (*messaging.Conversation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockConversationRepository) ListByParticipant(ctx context.Context, ref messaging.ParticipantRef) ([]*messaging.Conversation, error) {
	if m.ListByParticipantFunc != nil {
		return m.ListByParticipantFunc(ctx, ref)
	}
	return nil, nil
}

func (m *mockConversationRepository) UpdateLastMessageAt(ctx context.Context, id uint, at time.Time) error {
	if m.UpdateLastMessageAtFunc != nil {
		return m.UpdateLastMessageAtFunc(ctx, id, at)
	}
	return nil
}

type mockMessageRepository struct {
	SaveFunc               func(ctx context.Context, message *messaging.Message) error
	ListByConversationFunc func(ctx context.Context, conversationID uint) ([]*messaging.Message, error)
	MarkReadExceptFunc     func(ctx context.Context, conversationID uint, senderExternalUserID string) error
	CountUnreadExceptFunc  func(ctx context.Context, conversationID uint, senderExternalUserID string) (int64, error)
}

func (m *mockMessageRepository) Save(ctx context.Context, message *messaging.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, message)
	}
	return nil
}

func (m *mockMessageRepository) ListByConversation(ctx context.Context, conversationID uint) ([]*messaging.Message, error) {
	if m.ListByConversationFunc != nil {
		return m.ListByConversationFunc(ctx, conversationID)
	}
	return nil, nil
}

func (m *mockMessageRepository) MarkReadExcept(ctx context.Context, conversationID uint, senderExternalUserID string) error {
	if m.MarkReadExceptFunc != nil {
		return m.MarkReadExceptFunc(ctx, conversationID, senderExternalUserID)
	}
	return nil
}

func (m *mockMessageRepository) CountUnreadExcept(ctx context.Context, conversationID uint, senderExternalUserID string) (int64, error) {
	if m.CountUnreadExceptFunc != nil {
		return m.CountUnreadExceptFunc(ctx, conversationID, senderExternalUserID)
	}
	return 0, nil
}

type mockBeneficiaryRepository struct {
	SaveFunc                 func(ctx context.Context, b *beneficiary.Beneficiary) error
	UpdateFunc               func(ctx context.Context, b *beneficiary.Beneficiary) error
	FindByIDFunc             func(ctx context.Context, id uint) (*beneficiary.Beneficiary, error)
	FindByIDsFunc            func(ctx context.Context, ids []uint) (map[uint]*beneficiary.Beneficiary, error)
	FindByExternalUserIDFunc func(ctx context.Context, externalUserID string) (*beneficiary.Beneficiary, error)
}

func (m *mockBeneficiaryRepository) Save(ctx context.Context, b *beneficiary.Beneficiary) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, b)
	}
	return nil
}

func (m *mockBeneficiaryRepository) Update(ctx context.Context, b *beneficiary.Beneficiary) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	return nil
}

func (m *mockBeneficiaryRepository) FindByID(ctx context.Context, id uint) (*beneficiary.Beneficiary, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBeneficiaryRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]*beneficiary.Beneficiary, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return map[uint]*beneficiary.Beneficiary{}, nil
}

func (m *mockBeneficiaryRepository) FindByExternalUserID(ctx context.Context, externalUserID string) (*beneficiary.Beneficiary, error) {
	if m.FindByExternalUserIDFunc != nil {
		return m.FindByExternalUserIDFunc(ctx, externalUserID)
	}
	return nil, nil
}

type mockCaseWorkerRepository struct {
	SaveFunc                 func(ctx context.Context, w *caseworker.CaseWorker) error
	FindByIDFunc             func(ctx context.Context, id uint) (*caseworker.CaseWorker, error)
	FindByExternalUserIDFunc func(ctx context.Context, externalUserID string) (*caseworker.CaseWorker, error)
}

func (m *mockCaseWorkerRepository) Save(ctx context.Context, w *caseworker.CaseWorker) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, w)
	}
	return nil
}

func (m *mockCaseWorkerRepository) FindByID(ctx context.Context, id uint) (*caseworker.CaseWorker, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCaseWorkerRepository) FindByExternalUserID(ctx context.Context, externalUserID string) (*caseworker.CaseWorker, error) {
	if m.FindByExternalUserIDFunc != nil {
		return m.FindByExternalUserIDFunc(ctx, externalUserID)
	}
	return nil, nil
}

type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Named(name string) logger.Interface      { return m }
