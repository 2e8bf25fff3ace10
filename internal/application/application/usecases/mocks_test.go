package usecases

import (
	"context"

	"sanad/internal/domain/application"
	"sanad/internal/domain/beneficiary"
	"sanad/internal/shared/logger"
)

type mockApplicationRepository struct {
	SaveFunc              func(ctx context.Context, a *application.Application) error
	FindByIDFunc          func(ctx context.Context, id uint) (*application.Application, error)
	ListByBeneficiaryFunc func(ctx context.Context, beneficiaryID uint) ([]*application.Application, error)
}

func (m *mockApplicationRepository) Save(ctx context.Context, a *application.Application) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockApplicationRepository) FindByID(ctx context.Context, id uint) (*application.Application, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockApplicationRepository) ListByBeneficiary(ctx context.Context, beneficiaryID uint) ([]*application.Application, error) {
	if m.ListByBeneficiaryFunc != nil {
		return m.ListByBeneficiaryFunc(ctx, beneficiaryID)
	}
	return nil, nil
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

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Named(name string) logger.Interface      { return m }
