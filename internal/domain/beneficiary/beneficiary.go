package beneficiary

import (
	"fmt"
	"strings"
	"time"
)

// Beneficiary is the profile of a support recipient, keyed by the external
// identity provider's user id. It is created lazily on first authenticated
// access and owns its contact fields; status belongs to staff.
type Beneficiary struct {
	id             uint
	externalUserID string
	firstName      string
	lastName       string
	phoneNumber    string
	address        string
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

func NewBeneficiary(externalUserID, firstName, lastName string, status Status) (*Beneficiary, error) {
	if externalUserID == "" {
		return nil, fmt.Errorf("external user ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	now := time.Now()
	return &Beneficiary{
		externalUserID: externalUserID,
		firstName:      firstName,
		lastName:       lastName,
		status:         status,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructBeneficiary(
	id uint,
	externalUserID string,
	firstName, lastName, phoneNumber, address string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Beneficiary, error) {
	if id == 0 {
		return nil, fmt.Errorf("beneficiary ID cannot be zero")
	}
	if externalUserID == "" {
		return nil, fmt.Errorf("external user ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Beneficiary{
		id:             id,
		externalUserID: externalUserID,
		firstName:      firstName,
		lastName:       lastName,
		phoneNumber:    phoneNumber,
		address:        address,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (b *Beneficiary) ID() uint                { return b.id }
func (b *Beneficiary) ExternalUserID() string  { return b.externalUserID }
func (b *Beneficiary) FirstName() string       { return b.firstName }
func (b *Beneficiary) LastName() string        { return b.lastName }
func (b *Beneficiary) PhoneNumber() string     { return b.phoneNumber }
func (b *Beneficiary) Address() string         { return b.address }
func (b *Beneficiary) Status() Status          { return b.status }
func (b *Beneficiary) CreatedAt() time.Time    { return b.createdAt }
func (b *Beneficiary) UpdatedAt() time.Time    { return b.updatedAt }

// DisplayName is the name shown to other users, such as on forum posts.
func (b *Beneficiary) DisplayName() string {
	name := strings.TrimSpace(b.firstName + " " + b.lastName)
	if name == "" {
		return "Unknown User"
	}
	return name
}

func (b *Beneficiary) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("beneficiary ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("beneficiary ID cannot be zero")
	}
	b.id = id
	return nil
}

// UpdateContact changes the owner-mutable fields.
func (b *Beneficiary) UpdateContact(firstName, lastName, phoneNumber, address string) error {
	if strings.TrimSpace(firstName) == "" {
		return fmt.Errorf("first name is required")
	}
	if strings.TrimSpace(lastName) == "" {
		return fmt.Errorf("last name is required")
	}

	b.firstName = firstName
	b.lastName = lastName
	b.phoneNumber = phoneNumber
	b.address = address
	b.updatedAt = time.Now()
	return nil
}
