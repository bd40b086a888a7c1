package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusFinalized  = "finalized"
)

// Attempt is one scored run of a test by a user. AttemptNumber is 1-based and
// strictly increasing per (test, user); the composite unique index backs the
// retry-on-conflict allocation in the service layer.
type Attempt struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	IDTest        uint           `json:"id_test" gorm:"not null;uniqueIndex:idx_attempt_number"`
	UserID        uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_attempt_number"`
	AttemptNumber int            `json:"attempt_number" gorm:"not null;uniqueIndex:idx_attempt_number"`
	Status        string         `json:"status" gorm:"default:'in_progress'"`
	Score         float64        `json:"score"`
	Accuracy      float64        `json:"accuracy"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
