package usecases

import (
	"context"

	"sanad/internal/domain/information"
	"sanad/internal/shared/logger"
)

type mockBenefitRepository struct {
	SaveFunc           func(ctx context.Context, benefit *information.Benefit) error
	ListByLanguageFunc func(ctx context.Context, language information.Language) ([]*information.Benefit, error)
	CountFunc          func(ctx context.Context) (int64, error)
}

func (m *mockBenefitRepository) Save(ctx context.Context, benefit *information.Benefit) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, benefit)
	}
	return nil
}

func (m *mockBenefitRepository) ListByLanguage(ctx context.Context, language information.Language) ([]*information.Benefit, error) {
	if m.ListByLanguageFunc != nil {
		return m.ListByLanguageFunc(ctx, language)
	}
	return nil, nil
}

func (m *mockBenefitRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockFAQRepository struct {
	SaveFunc           func(ctx context.Context, faq *information.FAQ) error
	ListByLanguageFunc func(ctx context.Context, language information.Language) ([]*information.FAQ, error)
	CountFunc          func(ctx context.Context) (int64, error)
}

func (m *mockFAQRepository) Save(ctx context.Context, faq *information.FAQ) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, faq)
	}
	return nil
}

func (m *mockFAQRepository) ListByLanguage(ctx context.Context, language information.Language) ([]*information.FAQ, error) {
	if m.ListByLanguageFunc != nil {
		return m.ListByLanguageFunc(ctx, language)
	}
	return nil, nil
}

func (m *mockFAQRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Named(name string) logger.Interface      { return m }
