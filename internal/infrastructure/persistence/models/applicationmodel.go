package models

import (
	"time"

	"gorm.io/datatypes"

	"sanad/internal/shared/constants"
)

type ApplicationModel struct {
	ID            uint           `gorm:"primaryKey"`
	BeneficiaryID uint           `gorm:"not null;index"`
	Type          string         `gorm:"size:50;not null"`
	Status        string         `gorm:"size:50;not null;default:'Draft';index"`
	FormData      datatypes.JSON `gorm:"not null"`
	SubmittedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Beneficiary *BeneficiaryModel `gorm:"foreignKey:BeneficiaryID;constraint:OnDelete:CASCADE"`
}

func (ApplicationModel) TableName() string {
	return constants.TableApplications
}
