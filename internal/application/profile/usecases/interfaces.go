package usecases

import "context"

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*GetProfileResult, error)
}

type EnsureProfileExecutor interface {
	Execute(ctx context.Context, cmd EnsureProfileCommand) (*EnsureProfileResult, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error)
}
