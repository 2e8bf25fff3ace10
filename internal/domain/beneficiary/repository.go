package beneficiary

import "context"

type Repository interface {
	Save(ctx context.Context, b *Beneficiary) error
	Update(ctx context.Context, b *Beneficiary) error
	FindByID(ctx context.Context, id uint) (*Beneficiary, error)
	FindByIDs(ctx context.Context, ids []uint) (map[uint]*Beneficiary, error)
	FindByExternalUserID(ctx context.Context, externalUserID string) (*Beneficiary, error)
}
