package service

import (
	"strings"

	"github.com/alysson-b/simulados-api/internal/apperr"
	"github.com/alysson-b/simulados-api/internal/dto"
	"github.com/alysson-b/simulados-api/internal/model"
	"github.com/alysson-b/simulados-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type QuestionService interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponseDTO, error)
	GetQuestion(id uint) (*dto.QuestionResponseDTO, error)
	ListAllQuestions() ([]dto.QuestionResponseDTO, error)
	ListQuestionsByModule(moduleID uint) ([]dto.QuestionResponseDTO, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{questionRepo: questionRepo}
}

func toQuestionDTO(q *model.Question) *dto.QuestionResponseDTO {
	var d dto.QuestionResponseDTO
	copier.Copy(&d, q)
	return &d
}

// CreateQuestion inserts the question and one module link per given module.
// The first module becomes the owning one. The correct-option reference must
// resolve to one of the provided non-empty option slots.
func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponseDTO, error) {
	if req.Pergunta == "" || req.OpcaoA == "" || req.OpcaoB == "" || req.OpcaoC == "" || req.OpcaoD == "" {
		return nil, apperr.Validation("pergunta and options A-D are required")
	}
	if req.RespostaCorreta == "" || len(req.Modulos) == 0 {
		return nil, apperr.Validation("resposta_correta and at least one module are required")
	}

	question := &model.Question{
		Pergunta:        req.Pergunta,
		OpcaoA:          req.OpcaoA,
		OpcaoB:          req.OpcaoB,
		OpcaoC:          req.OpcaoC,
		OpcaoD:          req.OpcaoD,
		OpcaoE:          req.OpcaoE,
		RespostaCorreta: strings.ToLower(strings.TrimSpace(req.RespostaCorreta)),
		Explicacao:      req.Explicacao,
		ModuloID:        req.Modulos[0],
	}
	if correctLetterOf(question) == "" {
		return nil, apperr.Validation("resposta_correta must reference a non-empty option")
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, apperr.Upstream("failed to create question", err)
	}
	if err := s.questionRepo.LinkModules(question.ID, req.Modulos); err != nil {
		return nil, apperr.Upstream("failed to link question modules", err)
	}

	log.Info().Uint("questionID", question.ID).Int("modules", len(req.Modulos)).Msg("question created")
	return toQuestionDTO(question), nil
}

func (s *questionService) GetQuestion(id uint) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		return nil, storeErr(err, "question not found", "failed to load question")
	}
	return toQuestionDTO(question), nil
}

func (s *questionService) ListAllQuestions() ([]dto.QuestionResponseDTO, error) {
	questions, err := s.questionRepo.FindAll()
	if err != nil {
		return nil, apperr.Upstream("failed to list questions", err)
	}
	dtos := make([]dto.QuestionResponseDTO, 0, len(questions))
	for i := range questions {
		dtos = append(dtos, *toQuestionDTO(&questions[i]))
	}
	return dtos, nil
}

func (s *questionService) ListQuestionsByModule(moduleID uint) ([]dto.QuestionResponseDTO, error) {
	questions, err := s.questionRepo.FindByModule(moduleID)
	if err != nil {
		return nil, apperr.Upstream("failed to list questions", err)
	}
	dtos := make([]dto.QuestionResponseDTO, 0, len(questions))
	for i := range questions {
		dtos = append(dtos, *toQuestionDTO(&questions[i]))
	}
	return dtos, nil
}
