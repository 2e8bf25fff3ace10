package models

import (
	"time"

	"sanad/internal/shared/constants"
)

type FAQModel struct {
	ID        uint   `gorm:"primaryKey"`
	Question  string `gorm:"size:500;not null"`
	Answer    string `gorm:"type:text;not null"`
	Language  string `gorm:"size:5;not null;index"`
	SortOrder int    `gorm:"not null;default:0"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FAQModel) TableName() string {
	return constants.TableFAQs
}
