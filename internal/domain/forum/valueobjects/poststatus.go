package valueobjects

import "fmt"

// PostStatus is independent of the parent topic's status: admins can toggle
// a post's visibility regardless of whether the topic is open, closed, or
// hidden.
type PostStatus string

const (
	PostStatusVisible       PostStatus = "Visible"
	PostStatusHiddenByAdmin PostStatus = "HiddenByAdmin"
)

var validPostStatuses = map[PostStatus]bool{
	PostStatusVisible:       true,
	PostStatusHiddenByAdmin: true,
}

func (s PostStatus) String() string {
	return string(s)
}

func (s PostStatus) IsValid() bool {
	return validPostStatuses[s]
}

// CanTransitionTo is a two-state toggle; self-transitions are idempotent
// successes, matching moderation semantics.
func (s PostStatus) CanTransitionTo(next PostStatus) bool {
	return validPostStatuses[s] && validPostStatuses[next]
}

func (s PostStatus) IsVisible() bool {
	return s == PostStatusVisible
}

func NewPostStatus(s string) (PostStatus, error) {
	status := PostStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid post status: %s", s)
	}
	return status, nil
}
