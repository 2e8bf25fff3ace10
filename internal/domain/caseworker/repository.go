package caseworker

import "context"

type Repository interface {
	Save(ctx context.Context, w *CaseWorker) error
	FindByID(ctx context.Context, id uint) (*CaseWorker, error)
	FindByExternalUserID(ctx context.Context, externalUserID string) (*CaseWorker, error)
}
