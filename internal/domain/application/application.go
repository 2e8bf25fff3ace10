// Package application models assistance requests submitted by
// beneficiaries. The form payload varies by type and is validated at write
// time only; it is stored verbatim afterwards.
package application

import (
	"fmt"
	"time"

	vo "sanad/internal/domain/application/valueobjects"
)

type Application struct {
	id              uint
	beneficiaryID   uint
	applicationType vo.ApplicationType
	status          vo.ApplicationStatus
	formData        map[string]interface{}
	submittedAt     *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// NewSubmittedApplication creates an application that skips Draft entirely:
// the portal only persists applications at the moment of submission.
func NewSubmittedApplication(
	beneficiaryID uint,
	applicationType vo.ApplicationType,
	formData map[string]interface{},
) (*Application, error) {
	if beneficiaryID == 0 {
		return nil, fmt.Errorf("beneficiary ID is required")
	}
	if !applicationType.IsValid() {
		return nil, fmt.Errorf("invalid application type")
	}
	if formData == nil {
		return nil, fmt.Errorf("form data is required")
	}

	now := time.Now()
	return &Application{
		beneficiaryID:   beneficiaryID,
		applicationType: applicationType,
		status:          vo.StatusSubmitted,
		formData:        formData,
		submittedAt:     &now,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructApplication(
	id uint,
	beneficiaryID uint,
	applicationType vo.ApplicationType,
	status vo.ApplicationStatus,
	formData map[string]interface{},
	submittedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Application, error) {
	if id == 0 {
		return nil, fmt.Errorf("application ID cannot be zero")
	}
	if beneficiaryID == 0 {
		return nil, fmt.Errorf("beneficiary ID is required")
	}
	if !applicationType.IsValid() {
		return nil, fmt.Errorf("invalid application type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid application status")
	}
	if formData == nil {
		formData = map[string]interface{}{}
	}

	return &Application{
		id:              id,
		beneficiaryID:   beneficiaryID,
		applicationType: applicationType,
		status:          status,
		formData:        formData,
		submittedAt:     submittedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (a *Application) ID() uint                               { return a.id }
func (a *Application) BeneficiaryID() uint                    { return a.beneficiaryID }
func (a *Application) ApplicationType() vo.ApplicationType    { return a.applicationType }
func (a *Application) Status() vo.ApplicationStatus           { return a.status }
func (a *Application) SubmittedAt() *time.Time                { return a.submittedAt }
func (a *Application) CreatedAt() time.Time                   { return a.createdAt }
func (a *Application) UpdatedAt() time.Time                   { return a.updatedAt }

func (a *Application) FormData() map[string]interface{} {
	dataCopy := make(map[string]interface{}, len(a.formData))
	for k, v := range a.formData {
		dataCopy[k] = v
	}
	return dataCopy
}

func (a *Application) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("application ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("application ID cannot be zero")
	}
	a.id = id
	return nil
}

// ChangeStatus applies a review transition according to the legal
// transition table.
func (a *Application) ChangeStatus(next vo.ApplicationStatus) error {
	if !next.IsValid() {
		return fmt.Errorf("invalid application status: %s", next)
	}
	if a.status == next {
		return nil
	}
	if !a.status.CanTransitionTo(next) {
		return fmt.Errorf("cannot transition from %s to %s", a.status, next)
	}

	a.status = next
	a.updatedAt = time.Now()
	return nil
}
