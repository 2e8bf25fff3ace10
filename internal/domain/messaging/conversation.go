// Package messaging models private conversations between a beneficiary
// and an assigned case worker.
package messaging

import (
	"fmt"
	"time"
)

// Conversation links exactly one beneficiary with one case worker.
// lastMessageAt orders the inbox and is bumped whenever a message is sent.
type Conversation struct {
	id            uint
	beneficiaryID uint
	caseWorkerID  uint
	subject       string
	lastMessageAt time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewConversation(beneficiaryID, caseWorkerID uint, subject string) (*Conversation, error) {
	if beneficiaryID == 0 {
		return nil, fmt.Errorf("beneficiary ID is required")
	}
	if caseWorkerID == 0 {
		return nil, fmt.Errorf("case worker ID is required")
	}

	now := time.Now()
	return &Conversation{
		beneficiaryID: beneficiaryID,
		caseWorkerID:  caseWorkerID,
		subject:       subject,
		lastMessageAt: now,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructConversation(
	id uint,
	beneficiaryID, caseWorkerID uint,
	subject string,
	lastMessageAt time.Time,
	createdAt, updatedAt time.Time,
) (*Conversation, error) {
	if id == 0 {
		return nil, fmt.Errorf("conversation ID cannot be zero")
	}

	return &Conversation{
		id:            id,
		beneficiaryID: beneficiaryID,
		caseWorkerID:  caseWorkerID,
		subject:       subject,
		lastMessageAt: lastMessageAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (c *Conversation) ID() uint                 { return c.id }
func (c *Conversation) BeneficiaryID() uint      { return c.beneficiaryID }
func (c *Conversation) CaseWorkerID() uint       { return c.caseWorkerID }
func (c *Conversation) Subject() string          { return c.subject }
func (c *Conversation) LastMessageAt() time.Time { return c.lastMessageAt }
func (c *Conversation) CreatedAt() time.Time     { return c.createdAt }
func (c *Conversation) UpdatedAt() time.Time     { return c.updatedAt }

func (c *Conversation) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("conversation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("conversation ID cannot be zero")
	}
	c.id = id
	return nil
}

// HasParticipant reports whether the resolved caller is the designated
// beneficiary or case worker of this conversation. The participant's kind
// decides which foreign key is compared.
func (c *Conversation) HasParticipant(ref ParticipantRef) bool {
	switch ref.Kind {
	case ParticipantBeneficiary:
		return c.beneficiaryID == ref.ProfileID
	case ParticipantCaseWorker:
		return c.caseWorkerID == ref.ProfileID
	default:
		return false
	}
}

// Counterpart returns the kind and profile ID of the participant on the
// other side of the conversation from ref.
func (c *Conversation) Counterpart(ref ParticipantRef) (ParticipantKind, uint) {
	if ref.Kind == ParticipantCaseWorker {
		return ParticipantBeneficiary, c.beneficiaryID
	}
	return ParticipantCaseWorker, c.caseWorkerID
}

func (c *Conversation) Touch(at time.Time) {
	c.lastMessageAt = at
	c.updatedAt = at
}
