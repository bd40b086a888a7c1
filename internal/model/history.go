package model

import "time"

// History is the append-only summary of one finalized attempt. Rows are never
// updated or deleted by the workflow.
type History struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	UserID           uint      `json:"user_id" gorm:"not null;index"`
	IDTest           uint      `json:"id_test" gorm:"not null;index"`
	AttemptID        uint      `json:"attempt_id" gorm:"not null;index"`
	CorrectAnswers   int       `json:"correct_answers"`
	IncorrectAnswers int       `json:"incorrect_answers"`
	TotalQuestions   int       `json:"total_questions"`
	Accuracy         float64   `json:"accuracy"`
	Score            float64   `json:"score"`
	CreatedAt        time.Time `json:"created_at"`
}
