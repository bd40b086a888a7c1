package repository

import (
	"github.com/alysson-b/simulados-api/internal/model"
	"gorm.io/gorm"
)

// TestStats aggregates finalized attempts of one test.
type TestStats struct {
	TotalAttempts   int64
	AverageScore    float64
	HighestScore    float64
	AverageAccuracy float64
}

type HistoryRepository interface {
	FindAllByTest(testID uint) ([]model.History, error)
	FindAllByUser(userID uint) ([]model.History, error)
	StatsByTest(testID uint) (*TestStats, error)
	UserHighestScore(testID, userID uint) (float64, error)
	HighestScoreByUser(userID uint) (float64, error)
	LatestByUser(userID uint) (*model.History, error)
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) FindAllByTest(testID uint) ([]model.History, error) {
	var records []model.History
	err := r.db.Where("id_test = ?", testID).Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *historyRepository) StatsByTest(testID uint) (*TestStats, error) {
	var stats TestStats
	err := r.db.Model(&model.History{}).
		Select("COUNT(*) AS total_attempts, COALESCE(AVG(score), 0) AS average_score, COALESCE(MAX(score), 0) AS highest_score, COALESCE(AVG(accuracy), 0) AS average_accuracy").
		Where("id_test = ?", testID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *historyRepository) FindAllByUser(userID uint) ([]model.History, error) {
	var records []model.History
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&records).Error
	return records, err
}

// HighestScoreByUser is the user's best score across every test.
func (r *historyRepository) HighestScoreByUser(userID uint) (float64, error) {
	var highest float64
	err := r.db.Model(&model.History{}).
		Select("COALESCE(MAX(score), 0)").
		Where("user_id = ?", userID).
		Scan(&highest).Error
	return highest, err
}

func (r *historyRepository) UserHighestScore(testID, userID uint) (float64, error) {
	var highest float64
	err := r.db.Model(&model.History{}).
		Select("COALESCE(MAX(score), 0)").
		Where("id_test = ? AND user_id = ?", testID, userID).
		Scan(&highest).Error
	return highest, err
}

func (r *historyRepository) LatestByUser(userID uint) (*model.History, error) {
	var record model.History
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
