package model

import (
	"time"

	"gorm.io/gorm"
)

// Test (simulado) is a named collection of questions a user can attempt.
type Test struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Titulo    string         `json:"titulo" gorm:"not null"`
	Descricao string         `json:"descricao,omitempty"`
	CriadoPor uint           `json:"criado_por" gorm:"not null;index"`
	Rating    float64        `json:"rating" gorm:"default:0"`
	CreatedAt time.Time      `json:"criado_em"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TestQuestion links a question into a test. Membership is a set: the composite
// unique index rejects duplicate links.
type TestQuestion struct {
	ID        uint `gorm:"primarykey" json:"id"`
	IDTest    uint `json:"id_test" gorm:"not null;uniqueIndex:idx_test_questao"`
	IDQuestao uint `json:"id_questao" gorm:"not null;uniqueIndex:idx_test_questao"`
}
