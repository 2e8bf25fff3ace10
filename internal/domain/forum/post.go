package forum

import (
	"fmt"
	"time"

	vo "sanad/internal/domain/forum/valueobjects"
)

// Post is a single message inside a topic. The first post of a topic is
// created together with the topic itself.
type Post struct {
	id                   uint
	topicID              uint
	creatorBeneficiaryID uint
	content              string
	status               vo.PostStatus
	createdAt            time.Time
	updatedAt            time.Time
}

func NewPost(topicID, creatorBeneficiaryID uint, content string) (*Post, error) {
	if topicID == 0 {
		return nil, fmt.Errorf("topic ID is required")
	}
	if creatorBeneficiaryID == 0 {
		return nil, fmt.Errorf("creator beneficiary ID is required")
	}
	if len(content) < 1 {
		return nil, fmt.Errorf("content cannot be empty")
	}

	now := time.Now()
	return &Post{
		topicID:              topicID,
		creatorBeneficiaryID: creatorBeneficiaryID,
		content:              content,
		status:               vo.PostStatusVisible,
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

func ReconstructPost(
	id uint,
	topicID uint,
	creatorBeneficiaryID uint,
	content string,
	status vo.PostStatus,
	createdAt, updatedAt time.Time,
) (*Post, error) {
	if id == 0 {
		return nil, fmt.Errorf("post ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid post status")
	}

	return &Post{
		id:                   id,
		topicID:              topicID,
		creatorBeneficiaryID: creatorBeneficiaryID,
		content:              content,
		status:               status,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}, nil
}

func (p *Post) ID() uint                   { return p.id }
func (p *Post) TopicID() uint              { return p.topicID }
func (p *Post) CreatorBeneficiaryID() uint { return p.creatorBeneficiaryID }
func (p *Post) Content() string            { return p.content }
func (p *Post) Status() vo.PostStatus      { return p.status }
func (p *Post) CreatedAt() time.Time       { return p.createdAt }
func (p *Post) UpdatedAt() time.Time       { return p.updatedAt }

func (p *Post) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("post ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("post ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Post) VisibleTo(isAdmin bool) bool {
	return isAdmin || p.status.IsVisible()
}

// Moderate toggles the post between visible and hidden.
func (p *Post) Moderate(next vo.PostStatus) error {
	if !p.status.CanTransitionTo(next) {
		return fmt.Errorf("cannot transition post from %s to %s", p.status, next)
	}
	if p.status == next {
		return nil
	}
	p.status = next
	p.updatedAt = time.Now()
	return nil
}
