package repository

import (
	"github.com/alysson-b/simulados-api/internal/model"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	FindByTestAndUser(testID, userID uint) (*model.Progress, error)
	Create(progress *model.Progress) error
	Update(progress *model.Progress) error
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) FindByTestAndUser(testID, userID uint) (*model.Progress, error) {
	var progress model.Progress
	err := r.db.Where("id_test = ? AND user_id = ?", testID, userID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) Create(progress *model.Progress) error {
	return r.db.Create(progress).Error
}

func (r *progressRepository) Update(progress *model.Progress) error {
	return r.db.Save(progress).Error
}
