package application

import "context"

type Repository interface {
	Save(ctx context.Context, a *Application) error
	FindByID(ctx context.Context, id uint) (*Application, error)
	// ListByBeneficiary returns the beneficiary's applications newest-created-first.
	ListByBeneficiary(ctx context.Context, beneficiaryID uint) ([]*Application, error)
}
