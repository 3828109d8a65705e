package db

import (
	"time"

	"gorm.io/datatypes"
)

type Quiz struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"size:128;not null"`
	Songs     datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}
