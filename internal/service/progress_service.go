package service

import (
	"encoding/json"
	"errors"

	"github.com/alysson-b/simulados-api/internal/apperr"
	"github.com/alysson-b/simulados-api/internal/dto"
	"github.com/alysson-b/simulados-api/internal/model"
	"github.com/alysson-b/simulados-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProgressService persists the resumable cursor for a (test, user) pair.
type ProgressService interface {
	// SaveProgress upserts. With mustExist it fails with NotFound instead of
	// creating, which is the stricter PATCH behavior.
	SaveProgress(testID, userID uint, req dto.SaveProgressRequest, mustExist bool) (*dto.SaveProgressResponse, bool, error)
	LoadProgress(testID, userID uint) (*dto.LoadProgressResponse, error)
}

type progressService struct {
	progressRepo repository.ProgressRepository
	testRepo     repository.TestRepository
	moduleRepo   repository.ModuleRepository
}

func NewProgressService(
	progressRepo repository.ProgressRepository,
	testRepo repository.TestRepository,
	moduleRepo repository.ModuleRepository,
) ProgressService {
	return &progressService{
		progressRepo: progressRepo,
		testRepo:     testRepo,
		moduleRepo:   moduleRepo,
	}
}

// sameAnswers compares answer lists structurally, via their JSON encoding.
func sameAnswers(a, b []model.ProgressAnswer) bool {
	ja, err := json.Marshal(a)
	if err != nil {
		return false
	}
	jb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return string(ja) == string(jb)
}

func (s *progressService) SaveProgress(testID, userID uint, req dto.SaveProgressRequest, mustExist bool) (*dto.SaveProgressResponse, bool, error) {
	if testID == 0 || userID == 0 {
		return nil, false, apperr.Validation("testId and userId are required")
	}
	if req.Respostas == nil {
		return nil, false, apperr.Validation("respostas must be a list")
	}

	existing, err := s.progressRepo.FindByTestAndUser(testID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, apperr.Upstream("failed to load progress", err)
	}

	if existing == nil {
		if mustExist {
			return nil, false, apperr.NotFound("no progress found for this test")
		}
		progress := &model.Progress{
			IDTest:        testID,
			UserID:        userID,
			UltimaQuestao: req.UltimaQuestao,
			Respostas:     req.Respostas,
		}
		if err := s.progressRepo.Create(progress); err != nil {
			return nil, false, apperr.Upstream("failed to save progress", err)
		}
		return &dto.SaveProgressResponse{Message: "progress saved", Progresso: progress}, true, nil
	}

	if existing.UltimaQuestao == req.UltimaQuestao && sameAnswers(existing.Respostas, req.Respostas) {
		return &dto.SaveProgressResponse{Message: "progress already up to date", Progresso: existing}, false, nil
	}

	existing.UltimaQuestao = req.UltimaQuestao
	existing.Respostas = req.Respostas
	if err := s.progressRepo.Update(existing); err != nil {
		return nil, false, apperr.Upstream("failed to update progress", err)
	}
	return &dto.SaveProgressResponse{Message: "progress updated", Progresso: existing}, false, nil
}

// LoadProgress returns the stored cursor plus the question ids of the test the
// user has not answered yet. A missing row is a normal cold start, not an error.
func (s *progressService) LoadProgress(testID, userID uint) (*dto.LoadProgressResponse, error) {
	if testID == 0 || userID == 0 {
		return nil, apperr.Validation("testId and userId are required")
	}

	progress, err := s.progressRepo.FindByTestAndUser(testID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Upstream("failed to load progress", err)
	}

	questionIDs, err := s.testRepo.QuestionIDs(testID)
	if err != nil {
		return nil, apperr.Upstream("failed to load test questions", err)
	}

	resp := &dto.LoadProgressResponse{
		Message:           "progress loaded",
		Respostas:         []model.ProgressAnswer{},
		QuestoesRestantes: orEmpty(questionIDs),
		Topicos:           []string{},
	}

	if progress != nil {
		resp.UltimaQuestao = progress.UltimaQuestao
		if progress.Respostas != nil {
			resp.Respostas = progress.Respostas
		}
		created, updated := progress.CreatedAt, progress.UpdatedAt
		resp.CreatedAt = &created
		resp.UpdatedAt = &updated

		answered := make(map[uint]bool, len(progress.Respostas))
		for _, a := range progress.Respostas {
			answered[a.QuestaoID] = true
		}
		remaining := make([]uint, 0, len(questionIDs))
		for _, id := range questionIDs {
			if !answered[id] {
				remaining = append(remaining, id)
			}
		}
		resp.QuestoesRestantes = remaining
	}

	// Topic names are informational; failures degrade to an empty list.
	resp.Topicos = orEmpty(fetchOrDefault("test topics", []string{}, func() ([]string, error) {
		moduleIDs, err := s.moduleRepo.ModuleIDsForQuestions(questionIDs)
		if err != nil {
			return nil, err
		}
		return s.moduleRepo.NamesByIDs(moduleIDs)
	}))

	log.Debug().Uint("testID", testID).Uint("userID", userID).
		Int("remaining", len(resp.QuestoesRestantes)).Msg("progress loaded")
	return resp, nil
}
