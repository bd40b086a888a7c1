package dto

import "github.com/alysson-b/simulados-api/internal/model"

type CreateTestRequest struct {
	Titulo    string `json:"titulo" binding:"required"`
	Descricao string `json:"descricao" binding:"required"`
}

type UpdateTestRequest struct {
	Titulo    string `json:"titulo" binding:"required"`
	Descricao string `json:"descricao" binding:"required"`
}

type AddQuestionsRequest struct {
	Questoes []uint `json:"questoes" binding:"required,min=1"`
}

type AddRandomQuestionsRequest struct {
	Quantidade int  `json:"quantidade" binding:"required,gt=0"`
	IDModulo   uint `json:"idModulo" binding:"required"`
}

type RecordAnswerRequest struct {
	AttemptID uint   `json:"attempt_id" binding:"required"`
	QuestaoID uint   `json:"questao_id" binding:"required"`
	Resposta  string `json:"resposta" binding:"required"`
}

type FinalizeAttemptRequest struct {
	AttemptID uint `json:"attempt_id" binding:"required"`
}

type SaveProgressRequest struct {
	UltimaQuestao uint                   `json:"ultimaQuestao"`
	Respostas     []model.ProgressAnswer `json:"respostas"`
}

type CreateQuestionRequest struct {
	Pergunta        string  `json:"pergunta" binding:"required"`
	OpcaoA          string  `json:"opcao_a" binding:"required"`
	OpcaoB          string  `json:"opcao_b" binding:"required"`
	OpcaoC          string  `json:"opcao_c" binding:"required"`
	OpcaoD          string  `json:"opcao_d" binding:"required"`
	OpcaoE          *string `json:"opcao_e"`
	RespostaCorreta string  `json:"resposta_correta" binding:"required"`
	Explicacao      string  `json:"explicacao"`
	Modulos         []uint  `json:"modulos" binding:"required,min=1"`
}
