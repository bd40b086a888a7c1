package model

import "time"

// ProgressAnswer is one entry of the resumable scratch answer list.
type ProgressAnswer struct {
	QuestaoID uint   `json:"id_questao"`
	Resposta  string `json:"resposta"`
}

// Progress is the resumable cursor for a (test, user) pair. It is scratch state
// for client resumption, independent of any formal attempt.
type Progress struct {
	ID            uint             `gorm:"primarykey" json:"id"`
	IDTest        uint             `json:"id_test" gorm:"not null;uniqueIndex:idx_progress_test_user"`
	UserID        uint             `json:"user_id" gorm:"not null;uniqueIndex:idx_progress_test_user"`
	UltimaQuestao uint             `json:"ultima_questao"`
	Respostas     []ProgressAnswer `json:"respostas" gorm:"serializer:json"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
