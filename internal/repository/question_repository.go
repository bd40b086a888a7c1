package repository

import (
	"github.com/alysson-b/simulados-api/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByIDs(ids []uint) ([]model.Question, error)
	FindAll() ([]model.Question, error)
	FindByModule(moduleID uint) ([]model.Question, error)
	FindRandomByModule(moduleID uint, limit int) ([]model.Question, error)
	LinkModules(questionID uint, moduleIDs []uint) error
	CountByIDs(ids []uint) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	var questions []model.Question
	if len(ids) == 0 {
		return questions, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Order("created_at DESC").Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindByModule(moduleID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("id_modulo = ?", moduleID).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindRandomByModule(moduleID uint, limit int) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("id_modulo = ?", moduleID).
		Order("RANDOM()").
		Limit(limit).
		Find(&questions).Error
	return questions, err
}

func (r *questionRepository) LinkModules(questionID uint, moduleIDs []uint) error {
	var links []model.QuestionModule
	for _, moduleID := range moduleIDs {
		links = append(links, model.QuestionModule{QuestaoID: questionID, ModuloID: moduleID})
	}
	if len(links) == 0 {
		return nil
	}
	return r.db.Create(&links).Error
}

func (r *questionRepository) CountByIDs(ids []uint) (int64, error) {
	var count int64
	if len(ids) == 0 {
		return 0, nil
	}
	err := r.db.Model(&model.Question{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}
