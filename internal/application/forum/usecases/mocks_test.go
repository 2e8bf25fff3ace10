package usecases

import (
	"context"
	"time"

	"sanad/internal/domain/beneficiary"
	"sanad/internal/domain/forum"
	vo "sanad/internal/domain/forum/valueobjects"
	"sanad/internal/shared/logger"
)

type mockTopicRepository struct {
	SaveFunc         func(ctx context.Context, topic *forum.Topic) error
	FindByIDFunc     func(ctx context.Context, id uint) (*forum.Topic, error)
	ListFunc         func(ctx context.Context, includeAll bool) ([]*forum.Topic, error)
	UpdateStatusFunc func(ctx context.Context, id uint, status vo.TopicStatus) error
	RecordReplyFunc  func(ctx context.Context, id uint, at time.Time) error
}

func (m *mockTopicRepository) Save(ctx context.Context, topic *forum.Topic) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, topic)
	}
	return nil
}

func (m *mockTopicRepository) FindByID(ctx context.Context, id uint) (*forum.Topic, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTopicRepository) List(ctx context.Context, includeAll bool) ([]*forum.Topic, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, includeAll)
	}
	return nil, nil
}

func (m *mockTopicRepository) UpdateStatus(ctx context.Context, id uint, status vo.TopicStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockTopicRepository) RecordReply(ctx context.Context, id uint, at time.Time) error {
	if m.RecordReplyFunc != nil {
		return m.RecordReplyFunc(ctx, id, at)
	}
	return nil
}

type mockPostRepository struct {
	SaveFunc         func(ctx context.Context, post *forum.Post) error
	FindByIDFunc     func(ctx context.Context, id uint) (*forum.Post, error)
	ListByTopicFunc  func(ctx context.Context, topicID uint, includeHidden bool) ([]*forum.Post, error)
	UpdateStatusFunc func(ctx context.Context, id uint, status vo.PostStatus) error
}

func (m *mockPostRepository) Save(ctx context.Context, post *forum.Post) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, post)
	}
	return nil
}

func (m *mockPostRepository) FindByID(ctx context.Context, id uint) (*forum.Post, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPostRepository) ListByTopic(ctx context.Context, topicID uint, includeHidden bool) ([]*forum.Post, error) {
	if m.ListByTopicFunc != nil {
		return m.ListByTopicFunc(ctx, topicID, includeHidden)
	}
	return nil, nil
}

func (m *mockPostRepository) UpdateStatus(ctx context.Context, id uint, status vo.PostStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
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

// mockTxManager runs the callback inline so repository mocks observe the
// same context the use case passed in.
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
