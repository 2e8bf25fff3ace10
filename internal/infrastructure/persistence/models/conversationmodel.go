package models

import (
	"time"

	"sanad/internal/shared/constants"
)

type ConversationModel struct {
	ID            uint      `gorm:"primaryKey"`
	BeneficiaryID uint      `gorm:"not null;index"`
	CaseWorkerID  uint      `gorm:"not null;index"`
	Subject       string    `gorm:"size:255"`
	LastMessageAt time.Time `gorm:"not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Beneficiary *BeneficiaryModel `gorm:"foreignKey:BeneficiaryID;constraint:OnDelete:CASCADE"`
	CaseWorker  *CaseWorkerModel  `gorm:"foreignKey:CaseWorkerID;constraint:OnDelete:CASCADE"`
}

func (ConversationModel) TableName() string {
	return constants.TableConversations
}
