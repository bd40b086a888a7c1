package dto

import (
	"time"

	"github.com/alysson-b/simulados-api/internal/model"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AttemptDTO struct {
	ID            uint      `json:"id"`
	IDTest        uint      `json:"id_test"`
	UserID        uint      `json:"user_id"`
	AttemptNumber int       `json:"attempt_number"`
	Status        string    `json:"status"`
	Score         float64   `json:"score"`
	Accuracy      float64   `json:"accuracy"`
	CreatedAt     time.Time `json:"created_at"`
}

type TestSummaryDTO struct {
	ID        uint   `json:"id"`
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
}

type StartAttemptResponse struct {
	Message          string         `json:"message"`
	Test             TestSummaryDTO `json:"test"`
	Attempt          AttemptDTO     `json:"attempt"`
	PreviousAttempts []AttemptDTO   `json:"previousAttempts"`
}

type AnswerResultDTO struct {
	AttemptID uint   `json:"attempt_id"`
	QuestaoID uint   `json:"questao_id"`
	Resposta  string `json:"resposta"`
	Correta   bool   `json:"correta"`
}

type RecordAnswerResponse struct {
	Message  string          `json:"message"`
	Resposta AnswerResultDTO `json:"resposta"`
}

type FinalizeAttemptResponse struct {
	Message          string  `json:"message"`
	CorrectAnswers   int     `json:"correctAnswers"`
	IncorrectAnswers int     `json:"incorrectAnswers"`
	TotalQuestions   int     `json:"totalQuestions"`
	Accuracy         float64 `json:"accuracy"`
	Score            float64 `json:"score"`
}

// EnrichedTestDTO is a test listing row decorated with module names and the
// historical accuracy of the test; both degrade to defaults when lookups fail.
type EnrichedTestDTO struct {
	ID                uint      `json:"id"`
	Titulo            string    `json:"titulo"`
	Descricao         string    `json:"descricao"`
	CriadoPor         uint      `json:"criado_por"`
	Rating            float64   `json:"rating"`
	CriadoEm          time.Time `json:"criado_em"`
	Modulos           []string  `json:"modulos"`
	PorcentagemAcerto string    `json:"porcentagemAcerto"`
}

type ListTestsResponse struct {
	UltimoTeste       *EnrichedTestDTO  `json:"ultimoTeste"`
	MeusTestes        []EnrichedTestDTO `json:"meusTestes"`
	TestesDisponiveis []EnrichedTestDTO `json:"testesDisponiveis"`
}

type TestDetailsResponse struct {
	Titulo              string   `json:"titulo"`
	Descricao           string   `json:"descricao"`
	Rating              float64  `json:"rating"`
	PorcentagemAcerto   string   `json:"porcentagemAcerto"`
	TotalResolucoes     int64    `json:"totalResolucoes"`
	MaiorPontuacao      float64  `json:"maiorPontuacao"`
	MinhaMaiorPontuacao float64  `json:"minhaMaiorPontuacao"`
	Criador             string   `json:"criador"`
	Modulos             []string `json:"modulos"`
	TotalQuestoes       int      `json:"totalQuestoes"`
	Questoes            []uint   `json:"questoes"`
}

type TestHistoryResponse struct {
	Historico []model.History `json:"historico"`
}

// UserPerformanceResponse summarizes a user's accuracy over every answer they
// ever recorded plus their best score across all tests.
type UserPerformanceResponse struct {
	Rendimento          string  `json:"rendimento"`
	TotalResolutions    int64   `json:"totalResolutions"`
	TotalCorrectAnswers int64   `json:"totalCorrectAnswers"`
	TotalErrors         int64   `json:"totalErrors"`
	HighestScore        float64 `json:"highestScore"`
}

type UserHistoryResponse struct {
	Historico []model.History `json:"historico"`
}

type SaveProgressResponse struct {
	Message   string          `json:"message"`
	Progresso *model.Progress `json:"progresso,omitempty"`
}

type LoadProgressResponse struct {
	Message           string                 `json:"message"`
	UltimaQuestao     uint                   `json:"ultimaQuestao"`
	Respostas         []model.ProgressAnswer `json:"respostas"`
	QuestoesRestantes []uint                 `json:"questoesRestantes"`
	Topicos           []string               `json:"topicos"`
	CreatedAt         *time.Time             `json:"created_at"`
	UpdatedAt         *time.Time             `json:"updated_at"`
}

type QuestionResponseDTO struct {
	ID              uint    `json:"id"`
	Pergunta        string  `json:"pergunta"`
	OpcaoA          string  `json:"opcao_a"`
	OpcaoB          string  `json:"opcao_b"`
	OpcaoC          string  `json:"opcao_c"`
	OpcaoD          string  `json:"opcao_d"`
	OpcaoE          *string `json:"opcao_e,omitempty"`
	RespostaCorreta string  `json:"resposta_correta"`
	Explicacao      string  `json:"explicacao,omitempty"`
	ModuloID        uint    `json:"id_modulo"`
}

type CreateQuestionResponse struct {
	Message string              `json:"message"`
	Questao QuestionResponseDTO `json:"questao"`
}

type RandomQuestionsResponse struct {
	Message  string                `json:"message"`
	Questoes []QuestionResponseDTO `json:"questoes"`
}

type ModuleDTO struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}
