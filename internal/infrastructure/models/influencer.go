package models

import (
	"time"

	"github.com/google/uuid"
)

type Influencer struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `gorm:"type:char(36);uniqueIndex;not null"`
	Reach     int       `gorm:"not null;default:0;index"`
	Verified  bool      `gorm:"not null;default:false"`
	Email     *string   `gorm:"type:varchar(120)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Influencer) TableName() string { return "influencers" }
