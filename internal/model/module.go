package model

import (
	"time"

	"gorm.io/gorm"
)

type Module struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Nome      string         `json:"nome" gorm:"not null;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
