package usecases

import "context"

type ListTopicsExecutor interface {
	Execute(ctx context.Context, query ListTopicsQuery) (*ListTopicsResult, error)
}

type GetTopicDetailExecutor interface {
	Execute(ctx context.Context, query GetTopicDetailQuery) (*GetTopicDetailResult, error)
}

type CreateTopicExecutor interface {
	Execute(ctx context.Context, cmd CreateTopicCommand) (*CreateTopicResult, error)
}

type CreatePostExecutor interface {
	Execute(ctx context.Context, cmd CreatePostCommand) (*CreatePostResult, error)
}

type ModerateTopicExecutor interface {
	Execute(ctx context.Context, cmd ModerateTopicCommand) (*ModerateTopicResult, error)
}

type ModeratePostExecutor interface {
	Execute(ctx context.Context, cmd ModeratePostCommand) (*ModeratePostResult, error)
}
