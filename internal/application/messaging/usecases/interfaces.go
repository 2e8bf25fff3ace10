package usecases

import "context"

type ListConversationsExecutor interface {
	Execute(ctx context.Context, query ListConversationsQuery) (*ListConversationsResult, error)
}

type ListMessagesExecutor interface {
	Execute(ctx context.Context, query ListMessagesQuery) (*ListMessagesResult, error)
}

type SendMessageExecutor interface {
	Execute(ctx context.Context, cmd SendMessageCommand) (*SendMessageResult, error)
}
