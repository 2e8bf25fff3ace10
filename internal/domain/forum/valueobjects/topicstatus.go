package valueobjects

import "fmt"

// TopicStatus is one overlapping enum rather than independent closed and
// hidden flags: a topic is never simultaneously closed and hidden, and the
// later admin action overwrites the earlier one. The transition table makes
// that overwrite explicit.
type TopicStatus string

const (
	TopicStatusOpen          TopicStatus = "Open"
	TopicStatusClosedByAdmin TopicStatus = "ClosedByAdmin"
	TopicStatusHiddenByAdmin TopicStatus = "HiddenByAdmin"
)

var validTopicStatuses = map[TopicStatus]bool{
	TopicStatusOpen:          true,
	TopicStatusClosedByAdmin: true,
	TopicStatusHiddenByAdmin: true,
}

var topicStatusTransitions = map[TopicStatus][]TopicStatus{
	TopicStatusOpen:          {TopicStatusClosedByAdmin, TopicStatusHiddenByAdmin},
	TopicStatusClosedByAdmin: {TopicStatusOpen, TopicStatusHiddenByAdmin},
	TopicStatusHiddenByAdmin: {TopicStatusOpen, TopicStatusClosedByAdmin},
}

func (s TopicStatus) String() string {
	return string(s)
}

func (s TopicStatus) IsValid() bool {
	return validTopicStatuses[s]
}

// CanTransitionTo reports whether an admin action may move the topic to
// next. Self-transitions are legal: moderation ops are idempotent and
// hiding an already-hidden topic succeeds silently.
func (s TopicStatus) CanTransitionTo(next TopicStatus) bool {
	if s == next {
		return validTopicStatuses[s]
	}
	for _, allowed := range topicStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s TopicStatus) IsOpen() bool {
	return s == TopicStatusOpen
}

func (s TopicStatus) IsHidden() bool {
	return s == TopicStatusHiddenByAdmin
}

// AcceptsPosts reports whether replies may be created under the topic.
func (s TopicStatus) AcceptsPosts() bool {
	return s == TopicStatusOpen
}

func NewTopicStatus(s string) (TopicStatus, error) {
	status := TopicStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid topic status: %s", s)
	}
	return status, nil
}
