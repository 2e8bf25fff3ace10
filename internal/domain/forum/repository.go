package forum

import (
	"context"
	"time"

	vo "sanad/internal/domain/forum/valueobjects"
)

// TopicRepository persists topics. Implementations must honor the
// transaction carried in ctx when one is present.
type TopicRepository interface {
	Save(ctx context.Context, topic *Topic) error
	FindByID(ctx context.Context, id uint) (*Topic, error)
	// List returns topics ordered by lastActivityAt descending. When
	// includeAll is false only Open topics are returned.
	List(ctx context.Context, includeAll bool) ([]*Topic, error)
	UpdateStatus(ctx context.Context, id uint, status vo.TopicStatus) error
	// RecordReply increments the post counter and bumps lastActivityAt
	// atomically at the storage level.
	RecordReply(ctx context.Context, id uint, at time.Time) error
}

// PostRepository persists posts within topics.
type PostRepository interface {
	Save(ctx context.Context, post *Post) error
	FindByID(ctx context.Context, id uint) (*Post, error)
	// ListByTopic returns posts ordered by createdAt ascending. When
	// includeHidden is false hidden posts are filtered out.
	ListByTopic(ctx context.Context, topicID uint, includeHidden bool) ([]*Post, error)
	UpdateStatus(ctx context.Context, id uint, status vo.PostStatus) error
}
