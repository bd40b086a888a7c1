package model

import (
	"time"

	"gorm.io/gorm"
)

// Question is a multiple-choice question. RespostaCorreta holds the slot name of
// the correct option ("opcao_a".."opcao_e"), not the option text.
type Question struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Pergunta        string         `json:"pergunta" gorm:"type:text;not null"`
	OpcaoA          string         `json:"opcao_a" gorm:"not null"`
	OpcaoB          string         `json:"opcao_b" gorm:"not null"`
	OpcaoC          string         `json:"opcao_c" gorm:"not null"`
	OpcaoD          string         `json:"opcao_d" gorm:"not null"`
	OpcaoE          *string        `json:"opcao_e,omitempty"`
	RespostaCorreta string         `json:"resposta_correta" gorm:"not null"`
	Explicacao      string         `json:"explicacao,omitempty" gorm:"type:text"`
	ModuloID        uint           `json:"id_modulo" gorm:"not null;index"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// QuestionModule links a question to a module beyond its primary owning module.
type QuestionModule struct {
	ID        uint `gorm:"primarykey" json:"id"`
	QuestaoID uint `json:"questao_id" gorm:"not null;uniqueIndex:idx_questao_modulo"`
	ModuloID  uint `json:"modulo_id" gorm:"not null;uniqueIndex:idx_questao_modulo"`
}
