package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer stores the full option text the user picked, not the letter. At most
// one row exists per (attempt, question); later submissions overwrite it.
type Answer struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	AttemptID uint           `json:"attempt_id" gorm:"not null;uniqueIndex:idx_attempt_questao"`
	QuestaoID uint           `json:"questao_id" gorm:"not null;uniqueIndex:idx_attempt_questao"`
	Resposta  string         `json:"resposta" gorm:"type:text;not null"`
	Correta   bool           `json:"correta"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
