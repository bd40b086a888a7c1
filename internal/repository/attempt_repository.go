package repository

import (
	"github.com/alysson-b/simulados-api/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	FindByID(id uint) (*model.Attempt, error)
	FindAllByTestAndUser(testID, userID uint) ([]model.Attempt, error)
	// Finalize updates the attempt row and appends the history record in a
	// single transaction.
	Finalize(attempt *model.Attempt, record *model.History) error
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindByID(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllByTestAndUser(testID, userID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Where("id_test = ? AND user_id = ?", testID, userID).
		Order("attempt_number ASC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) Finalize(attempt *model.Attempt, record *model.History) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Attempt{}).
			Where("id = ?", attempt.ID).
			Updates(map[string]interface{}{
				"status":   attempt.Status,
				"score":    attempt.Score,
				"accuracy": attempt.Accuracy,
			}).Error; err != nil {
			return err
		}
		return tx.Create(record).Error
	})
}
