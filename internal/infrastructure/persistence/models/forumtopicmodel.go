package models

import (
	"time"

	"sanad/internal/shared/constants"
)

type ForumTopicModel struct {
	ID                   uint   `gorm:"primaryKey"`
	Title                string `gorm:"size:255;not null"`
	CreatorBeneficiaryID uint   `gorm:"not null;index"`
	Status               string `gorm:"size:50;not null;default:'Open';index"`
	PostCount            int    `gorm:"not null;default:1"`
	LastActivityAt       time.Time `gorm:"not null;index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Creator *BeneficiaryModel `gorm:"foreignKey:CreatorBeneficiaryID;constraint:OnDelete:CASCADE"`
}

func (ForumTopicModel) TableName() string {
	return constants.TableForumTopics
}
