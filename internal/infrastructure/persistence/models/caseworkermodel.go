package models

import (
	"time"

	"sanad/internal/shared/constants"
)

type CaseWorkerModel struct {
	ID             uint   `gorm:"primaryKey"`
	ExternalUserID string `gorm:"size:256;not null;uniqueIndex"`
	FirstName      string `gorm:"size:256;not null"`
	LastName       string `gorm:"size:256;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (CaseWorkerModel) TableName() string {
	return constants.TableCaseWorkers
}
