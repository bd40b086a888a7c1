package model

import (
	"time"

	"gorm.io/gorm"
)

// User exists here only for creator display-name lookups; credentials and
// sessions live in the external auth service.
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Nome      string         `json:"nome" gorm:"not null"`
	Email     string         `json:"email" gorm:"uniqueIndex"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
