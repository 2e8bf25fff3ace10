package models

import (
	"time"

	"sanad/internal/shared/constants"
)

type BeneficiaryModel struct {
	ID             uint   `gorm:"primaryKey"`
	ExternalUserID string `gorm:"size:256;not null;uniqueIndex"`
	FirstName      string `gorm:"size:256;not null"`
	LastName       string `gorm:"size:256;not null"`
	PhoneNumber    string `gorm:"size:50"`
	Address        string `gorm:"type:text"`
	Status         string `gorm:"size:50;not null;default:'Other'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (BeneficiaryModel) TableName() string {
	return constants.TableBeneficiaries
}
