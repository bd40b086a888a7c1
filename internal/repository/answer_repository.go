package repository

import (
	"github.com/alysson-b/simulados-api/internal/model"
	"gorm.io/gorm"
)

// AnswerCounts aggregates correctness over a set of answer rows.
type AnswerCounts struct {
	Total   int64
	Correct int64
}

type AnswerRepository interface {
	Create(answer *model.Answer) error
	Update(answer *model.Answer) error
	FindByAttemptAndQuestion(attemptID, questionID uint) (*model.Answer, error)
	FindAllByAttempt(attemptID uint) ([]model.Answer, error)
	// CountsByUser tallies every answer the user ever recorded, across all
	// attempts and tests.
	CountsByUser(userID uint) (*AnswerCounts, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *model.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) Update(answer *model.Answer) error {
	return r.db.Save(answer).Error
}

func (r *answerRepository) FindByAttemptAndQuestion(attemptID, questionID uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.Where("attempt_id = ? AND questao_id = ?", attemptID, questionID).First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) FindAllByAttempt(attemptID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Where("attempt_id = ?", attemptID).Find(&answers).Error
	return answers, err
}

func (r *answerRepository) CountsByUser(userID uint) (*AnswerCounts, error) {
	var counts AnswerCounts
	err := r.db.Model(&model.Answer{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN answers.correta THEN 1 ELSE 0 END), 0) AS correct").
		Joins("JOIN attempts ON attempts.id = answers.attempt_id").
		Where("attempts.user_id = ?", userID).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return &counts, nil
}
