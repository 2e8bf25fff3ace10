// Package caseworker holds the staff profile used as the counterpart of
// direct-messaging conversations.
package caseworker

import (
	"fmt"
	"strings"
	"time"
)

type CaseWorker struct {
	id             uint
	externalUserID string
	firstName      string
	lastName       string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewCaseWorker(externalUserID, firstName, lastName string) (*CaseWorker, error) {
	if externalUserID == "" {
		return nil, fmt.Errorf("external user ID is required")
	}

	now := time.Now()
	return &CaseWorker{
		externalUserID: externalUserID,
		firstName:      firstName,
		lastName:       lastName,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructCaseWorker(
	id uint,
	externalUserID string,
	firstName, lastName string,
	createdAt, updatedAt time.Time,
) (*CaseWorker, error) {
	if id == 0 {
		return nil, fmt.Errorf("caseworker ID cannot be zero")
	}
	if externalUserID == "" {
		return nil, fmt.Errorf("external user ID is required")
	}

	return &CaseWorker{
		id:             id,
		externalUserID: externalUserID,
		firstName:      firstName,
		lastName:       lastName,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (w *CaseWorker) ID() uint               { return w.id }
func (w *CaseWorker) ExternalUserID() string { return w.externalUserID }
func (w *CaseWorker) FirstName() string      { return w.firstName }
func (w *CaseWorker) LastName() string       { return w.lastName }
func (w *CaseWorker) CreatedAt() time.Time   { return w.createdAt }
func (w *CaseWorker) UpdatedAt() time.Time   { return w.updatedAt }

func (w *CaseWorker) DisplayName() string {
	name := strings.TrimSpace(w.firstName + " " + w.lastName)
	if name == "" {
		return "Unknown User"
	}
	return name
}

func (w *CaseWorker) SetID(id uint) error {
	if w.id != 0 {
		return fmt.Errorf("caseworker ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("caseworker ID cannot be zero")
	}
	w.id = id
	return nil
}
