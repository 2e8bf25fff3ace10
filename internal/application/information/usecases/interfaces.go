package usecases

import "context"

type ListBenefitsExecutor interface {
	Execute(ctx context.Context, query ListBenefitsQuery) (*ListBenefitsResult, error)
}

type ListFAQsExecutor interface {
	Execute(ctx context.Context, query ListFAQsQuery) (*ListFAQsResult, error)
}
