package service

import (
	"errors"
	"math"
	"strings"

	"github.com/alysson-b/simulados-api/internal/apperr"
	"github.com/alysson-b/simulados-api/internal/dto"
	"github.com/alysson-b/simulados-api/internal/model"
	"github.com/alysson-b/simulados-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttemptService orchestrates the attempt lifecycle: start, record answers,
// finalize into a scored history record.
type AttemptService interface {
	StartAttempt(testID, userID uint) (*dto.StartAttemptResponse, error)
	RecordAnswer(req dto.RecordAnswerRequest) (*dto.RecordAnswerResponse, bool, error)
	FinalizeAttempt(attemptID, userID uint) (*dto.FinalizeAttemptResponse, error)
}

type attemptService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
	answerRepo   repository.AnswerRepository
	notifier     TestNotifier
}

func NewAttemptService(
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AnswerRepository,
	notifier TestNotifier,
) AttemptService {
	return &attemptService{
		testRepo:     testRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		answerRepo:   answerRepo,
		notifier:     notifier,
	}
}

var optionLetters = []string{"A", "B", "C", "D", "E"}

func optionText(q *model.Question, letter string) string {
	switch letter {
	case "A":
		return strings.TrimSpace(q.OpcaoA)
	case "B":
		return strings.TrimSpace(q.OpcaoB)
	case "C":
		return strings.TrimSpace(q.OpcaoC)
	case "D":
		return strings.TrimSpace(q.OpcaoD)
	case "E":
		if q.OpcaoE != nil {
			return strings.TrimSpace(*q.OpcaoE)
		}
	}
	return ""
}

// correctLetterOf resolves the stored slot name ("opcao_b") to its letter.
// Returns "" when the reference does not resolve to a non-empty option.
func correctLetterOf(q *model.Question) string {
	want := strings.ToLower(strings.TrimSpace(q.RespostaCorreta))
	for _, letter := range optionLetters {
		if "opcao_"+strings.ToLower(letter) == want && optionText(q, letter) != "" {
			return letter
		}
	}
	return ""
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// StartAttempt allocates the next attempt number for (test, user) and creates a
// new in-progress attempt. Allocation is read-then-write; the composite unique
// index on (id_test, user_id, attempt_number) turns a concurrent duplicate into
// a conflict, which is retried once with a fresh read.
func (s *attemptService) StartAttempt(testID, userID uint) (*dto.StartAttemptResponse, error) {
	if testID == 0 || userID == 0 {
		return nil, apperr.Validation("testId and userId are required")
	}

	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		return nil, storeErr(err, "test not found", "failed to load test")
	}

	attempt, prior, err := s.createNextAttempt(testID, userID)
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		log.Warn().Uint("testID", testID).Uint("userID", userID).Msg("attempt number conflict, retrying allocation")
		attempt, prior, err = s.createNextAttempt(testID, userID)
	}
	if err != nil {
		return nil, apperr.Upstream("failed to create attempt", err)
	}

	resp := &dto.StartAttemptResponse{
		Message: "attempt started",
		Test: dto.TestSummaryDTO{
			ID:        test.ID,
			Titulo:    test.Titulo,
			Descricao: test.Descricao,
		},
		PreviousAttempts: make([]dto.AttemptDTO, 0, len(prior)),
	}
	copier.Copy(&resp.Attempt, attempt)
	for _, a := range prior {
		var d dto.AttemptDTO
		copier.Copy(&d, &a)
		resp.PreviousAttempts = append(resp.PreviousAttempts, d)
	}
	return resp, nil
}

func (s *attemptService) createNextAttempt(testID, userID uint) (*model.Attempt, []model.Attempt, error) {
	prior, err := s.attemptRepo.FindAllByTestAndUser(testID, userID)
	if err != nil {
		return nil, nil, err
	}

	next := 1
	for _, a := range prior {
		if a.AttemptNumber >= next {
			next = a.AttemptNumber + 1
		}
	}

	attempt := &model.Attempt{
		IDTest:        testID,
		UserID:        userID,
		AttemptNumber: next,
		Status:        model.AttemptStatusInProgress,
	}
	if err := s.attemptRepo.Create(attempt); err != nil {
		return nil, nil, err
	}
	return attempt, prior, nil
}

// RecordAnswer validates the submitted letter against the question's option
// slots, derives correctness by letter comparison and upserts the answer row.
// The bool result reports whether a new row was created.
func (s *attemptService) RecordAnswer(req dto.RecordAnswerRequest) (*dto.RecordAnswerResponse, bool, error) {
	if req.AttemptID == 0 || req.QuestaoID == 0 || strings.TrimSpace(req.Resposta) == "" {
		return nil, false, apperr.Validation("attempt_id, questao_id and resposta are required")
	}

	if _, err := s.attemptRepo.FindByID(req.AttemptID); err != nil {
		return nil, false, storeErr(err, "attempt not found", "failed to load attempt")
	}

	question, err := s.questionRepo.FindByID(req.QuestaoID)
	if err != nil {
		return nil, false, storeErr(err, "question not found", "failed to load question")
	}

	letter := strings.ToUpper(strings.TrimSpace(req.Resposta))
	text := optionText(question, letter)
	if text == "" {
		return nil, false, apperr.Validation("invalid answer for this question")
	}

	correct := correctLetterOf(question)
	if correct == "" {
		// The stored correct-option reference must resolve to a non-empty slot.
		return nil, false, apperr.Internal("question has no resolvable correct option", nil)
	}
	isCorrect := letter == correct

	result := dto.AnswerResultDTO{
		AttemptID: req.AttemptID,
		QuestaoID: req.QuestaoID,
		Resposta:  text,
		Correta:   isCorrect,
	}

	existing, err := s.answerRepo.FindByAttemptAndQuestion(req.AttemptID, req.QuestaoID)
	switch {
	case err == nil:
		existing.Resposta = text
		existing.Correta = isCorrect
		if err := s.answerRepo.Update(existing); err != nil {
			return nil, false, apperr.Upstream("failed to update answer", err)
		}
		return &dto.RecordAnswerResponse{Message: "answer updated", Resposta: result}, false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		answer := &model.Answer{
			AttemptID: req.AttemptID,
			QuestaoID: req.QuestaoID,
			Resposta:  text,
			Correta:   isCorrect,
		}
		if err := s.answerRepo.Create(answer); err != nil {
			return nil, false, apperr.Upstream("failed to save answer", err)
		}
		return &dto.RecordAnswerResponse{Message: "answer saved", Resposta: result}, true, nil
	default:
		return nil, false, apperr.Upstream("failed to look up answer", err)
	}
}

// FinalizeAttempt scores the attempt from the persisted correctness flags and,
// in one transaction, marks it finalized and appends the history record.
// Score is the raw correct count; accuracy the 2-decimal percentage.
func (s *attemptService) FinalizeAttempt(attemptID, userID uint) (*dto.FinalizeAttemptResponse, error) {
	if attemptID == 0 || userID == 0 {
		return nil, apperr.Validation("attempt_id and user_id are required")
	}

	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		return nil, storeErr(err, "attempt not found", "failed to load attempt")
	}
	// Another user's attempt is indistinguishable from a missing one.
	if attempt.UserID != userID {
		return nil, apperr.NotFound("attempt not found")
	}
	if attempt.Status == model.AttemptStatusFinalized {
		return nil, apperr.Validation("attempt already finalized")
	}

	answers, err := s.answerRepo.FindAllByAttempt(attemptID)
	if err != nil {
		return nil, apperr.Upstream("failed to load attempt answers", err)
	}

	total := len(answers)
	correct := 0
	for _, a := range answers {
		if a.Correta {
			correct++
		}
	}
	incorrect := total - correct

	accuracy := 0.0
	if total > 0 {
		accuracy = round2(float64(correct) / float64(total) * 100)
	}
	score := float64(correct)

	attempt.Status = model.AttemptStatusFinalized
	attempt.Score = score
	attempt.Accuracy = accuracy

	record := &model.History{
		UserID:           userID,
		IDTest:           attempt.IDTest,
		AttemptID:        attempt.ID,
		CorrectAnswers:   correct,
		IncorrectAnswers: incorrect,
		TotalQuestions:   total,
		Accuracy:         accuracy,
		Score:            score,
	}
	if err := s.attemptRepo.Finalize(attempt, record); err != nil {
		return nil, apperr.Upstream("failed to finalize attempt", err)
	}

	log.Info().
		Uint("attemptID", attempt.ID).
		Uint("testID", attempt.IDTest).
		Int("correct", correct).
		Int("total", total).
		Msg("attempt finalized")

	s.notifier.NotifyTestUpdate(attempt.IDTest)

	return &dto.FinalizeAttemptResponse{
		Message:          "attempt finalized",
		CorrectAnswers:   correct,
		IncorrectAnswers: incorrect,
		TotalQuestions:   total,
		Accuracy:         accuracy,
		Score:            score,
	}, nil
}
