package service

import (
	"fmt"

	"github.com/alysson-b/simulados-api/internal/apperr"
	"github.com/alysson-b/simulados-api/internal/dto"
	"github.com/alysson-b/simulados-api/internal/repository"
	"github.com/rs/zerolog/log"
)

// UserService exposes the user-scope aggregations: overall performance across
// every recorded answer, and the finalization history newest-first.
type UserService interface {
	GetPerformance(userID uint) (*dto.UserPerformanceResponse, error)
	GetHistory(userID uint) (*dto.UserHistoryResponse, error)
}

type userService struct {
	answerRepo  repository.AnswerRepository
	historyRepo repository.HistoryRepository
}

func NewUserService(
	answerRepo repository.AnswerRepository,
	historyRepo repository.HistoryRepository,
) UserService {
	return &userService{answerRepo: answerRepo, historyRepo: historyRepo}
}

// GetPerformance tallies correctness over all of the user's answer rows, not
// just finalized attempts, and joins in the best score from the history.
func (s *userService) GetPerformance(userID uint) (*dto.UserPerformanceResponse, error) {
	if userID == 0 {
		return nil, apperr.Validation("userId is required")
	}

	counts, err := s.answerRepo.CountsByUser(userID)
	if err != nil {
		return nil, apperr.Upstream("failed to load user answers", err)
	}

	rendimento := "0%"
	if counts.Total > 0 {
		rendimento = fmt.Sprintf("%.2f%%", float64(counts.Correct)/float64(counts.Total)*100)
	}

	highest, err := s.historyRepo.HighestScoreByUser(userID)
	if err != nil {
		return nil, apperr.Upstream("failed to load highest score", err)
	}

	log.Debug().Uint("userID", userID).Int64("answers", counts.Total).Msg("user performance computed")
	return &dto.UserPerformanceResponse{
		Rendimento:          rendimento,
		TotalResolutions:    counts.Total,
		TotalCorrectAnswers: counts.Correct,
		TotalErrors:         counts.Total - counts.Correct,
		HighestScore:        highest,
	}, nil
}

func (s *userService) GetHistory(userID uint) (*dto.UserHistoryResponse, error) {
	if userID == 0 {
		return nil, apperr.Validation("userId is required")
	}
	records, err := s.historyRepo.FindAllByUser(userID)
	if err != nil {
		return nil, apperr.Upstream("failed to load user history", err)
	}
	if len(records) == 0 {
		return nil, apperr.NotFound("no history found for this user")
	}
	return &dto.UserHistoryResponse{Historico: records}, nil
}
