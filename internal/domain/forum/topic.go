// Package forum models discussion topics and their posts, including the
// admin moderation lifecycle and the denormalized activity bookkeeping.
package forum

import (
	"fmt"
	"time"

	vo "sanad/internal/domain/forum/valueobjects"
)

// Topic is a discussion thread. postCount counts all post rows including
// the seed post, so a fresh topic starts at 1; lastActivityAt is bumped on
// creation and on every accepted reply.
type Topic struct {
	id                   uint
	title                string
	creatorBeneficiaryID uint
	status               vo.TopicStatus
	postCount            int
	lastActivityAt       time.Time
	createdAt            time.Time
	updatedAt            time.Time
}

func NewTopic(title string, creatorBeneficiaryID uint) (*Topic, error) {
	if len(title) < 5 {
		return nil, fmt.Errorf("title must be at least 5 characters")
	}
	if len(title) > 255 {
		return nil, fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if creatorBeneficiaryID == 0 {
		return nil, fmt.Errorf("creator beneficiary ID is required")
	}

	now := time.Now()
	return &Topic{
		title:                title,
		creatorBeneficiaryID: creatorBeneficiaryID,
		status:               vo.TopicStatusOpen,
		postCount:            1,
		lastActivityAt:       now,
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

func ReconstructTopic(
	id uint,
	title string,
	creatorBeneficiaryID uint,
	status vo.TopicStatus,
	postCount int,
	lastActivityAt time.Time,
	createdAt, updatedAt time.Time,
) (*Topic, error) {
	if id == 0 {
		return nil, fmt.Errorf("topic ID cannot be zero")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid topic status")
	}

	return &Topic{
		id:                   id,
		title:                title,
		creatorBeneficiaryID: creatorBeneficiaryID,
		status:               status,
		postCount:            postCount,
		lastActivityAt:       lastActivityAt,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}, nil
}

func (t *Topic) ID() uint                   { return t.id }
func (t *Topic) Title() string              { return t.title }
func (t *Topic) CreatorBeneficiaryID() uint { return t.creatorBeneficiaryID }
func (t *Topic) Status() vo.TopicStatus     { return t.status }
func (t *Topic) PostCount() int             { return t.postCount }
func (t *Topic) LastActivityAt() time.Time  { return t.lastActivityAt }
func (t *Topic) CreatedAt() time.Time       { return t.createdAt }
func (t *Topic) UpdatedAt() time.Time       { return t.updatedAt }

func (t *Topic) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("topic ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("topic ID cannot be zero")
	}
	t.id = id
	return nil
}

// VisibleTo reports whether a caller may see the topic. Admins see every
// status; everyone else only Open topics.
func (t *Topic) VisibleTo(isAdmin bool) bool {
	return isAdmin || t.status.IsOpen()
}

// Moderate applies an admin status change through the transition table.
func (t *Topic) Moderate(next vo.TopicStatus) error {
	if !t.status.CanTransitionTo(next) {
		return fmt.Errorf("cannot transition topic from %s to %s", t.status, next)
	}
	if t.status == next {
		return nil
	}
	t.status = next
	t.updatedAt = time.Now()
	return nil
}

// RecordReply updates the denormalized bookkeeping for an accepted reply.
// Callers must persist the post and this update in one transaction.
func (t *Topic) RecordReply(at time.Time) error {
	if !t.status.AcceptsPosts() {
		return fmt.Errorf("topic is not open")
	}
	t.postCount++
	t.lastActivityAt = at
	t.updatedAt = at
	return nil
}
