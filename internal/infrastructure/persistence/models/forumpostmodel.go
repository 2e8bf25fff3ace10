package models

import (
	"time"

	"sanad/internal/shared/constants"
)

type ForumPostModel struct {
	ID                   uint   `gorm:"primaryKey"`
	TopicID              uint   `gorm:"not null;index"`
	CreatorBeneficiaryID uint   `gorm:"not null;index"`
	Content              string `gorm:"type:text;not null"`
	Status               string `gorm:"size:50;not null;default:'Visible';index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Topic   *ForumTopicModel  `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE"`
	Creator *BeneficiaryModel `gorm:"foreignKey:CreatorBeneficiaryID;constraint:OnDelete:CASCADE"`
}

func (ForumPostModel) TableName() string {
	return constants.TableForumPosts
}
