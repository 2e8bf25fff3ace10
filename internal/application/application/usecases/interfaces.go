package usecases

import "context"

type SubmitFinancialApplicationExecutor interface {
	Execute(ctx context.Context, cmd SubmitFinancialApplicationCommand) (*SubmitApplicationResult, error)
}

type SubmitMedicalApplicationExecutor interface {
	Execute(ctx context.Context, cmd SubmitMedicalApplicationCommand) (*SubmitApplicationResult, error)
}

type SubmitEducationalApplicationExecutor interface {
	Execute(ctx context.Context, cmd SubmitEducationalApplicationCommand) (*SubmitApplicationResult, error)
}

type SubmitOtherApplicationExecutor interface {
	Execute(ctx context.Context, cmd SubmitOtherApplicationCommand) (*SubmitApplicationResult, error)
}

type ListMyApplicationsExecutor interface {
	Execute(ctx context.Context, query ListMyApplicationsQuery) (*ListMyApplicationsResult, error)
}
