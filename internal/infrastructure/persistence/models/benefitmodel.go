package models

import (
	"time"

	"sanad/internal/shared/constants"
)

type BenefitModel struct {
	ID          uint   `gorm:"primaryKey"`
	Slug        string `gorm:"size:255;not null;uniqueIndex:uq_benefits_slug_language"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	Category    string `gorm:"size:100"`
	Language    string `gorm:"size:5;not null;index;uniqueIndex:uq_benefits_slug_language"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (BenefitModel) TableName() string {
	return constants.TableBenefits
}
