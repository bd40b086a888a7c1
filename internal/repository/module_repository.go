package repository

import (
	"github.com/alysson-b/simulados-api/internal/model"
	"gorm.io/gorm"
)

type ModuleRepository interface {
	SearchByName(search string, limit int) ([]model.Module, error)
	NamesByIDs(ids []uint) ([]string, error)
	ModuleIDsForQuestions(questionIDs []uint) ([]uint, error)
}

type moduleRepository struct {
	db *gorm.DB
}

func NewModuleRepository(db *gorm.DB) ModuleRepository {
	return &moduleRepository{db: db}
}

func (r *moduleRepository) SearchByName(search string, limit int) ([]model.Module, error) {
	var modules []model.Module
	err := r.db.Where("nome ILIKE ?", "%"+search+"%").Limit(limit).Find(&modules).Error
	return modules, err
}

func (r *moduleRepository) NamesByIDs(ids []uint) ([]string, error) {
	var names []string
	if len(ids) == 0 {
		return names, nil
	}
	err := r.db.Model(&model.Module{}).Where("id IN ?", ids).Pluck("nome", &names).Error
	return names, err
}

// ModuleIDsForQuestions resolves the distinct module ids linked to any of the
// given questions through the questao_modulo join.
func (r *moduleRepository) ModuleIDsForQuestions(questionIDs []uint) ([]uint, error) {
	var ids []uint
	if len(questionIDs) == 0 {
		return ids, nil
	}
	err := r.db.Model(&model.QuestionModule{}).
		Where("questao_id IN ?", questionIDs).
		Distinct().
		Pluck("modulo_id", &ids).Error
	return ids, err
}
