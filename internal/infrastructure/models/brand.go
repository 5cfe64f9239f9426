package models

import (
	"time"

	"github.com/google/uuid"
)

type Brand struct {
	ID          uuid.UUID  `gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID  `gorm:"type:char(36);uniqueIndex;not null"`
	Name        *string    `gorm:"type:varchar(100)"`
	Email       *string    `gorm:"type:varchar(120)"`
	PhoneNumber *string    `gorm:"type:varchar(20)"`
	Tag         *string    `gorm:"type:varchar(50);index"`
	Location    *string    `gorm:"type:varchar(100);index"`
	EventStart  *time.Time `gorm:"type:date"`
	EventEnd    *time.Time `gorm:"type:date"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Brand) TableName() string { return "brands" }
