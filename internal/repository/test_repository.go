package repository

import (
	"github.com/alysson-b/simulados-api/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(test *model.Test) error
	FindByID(id uint) (*model.Test, error)
	FindAllByCreator(userID uint) ([]model.Test, error)
	FindAllExcludingCreator(userID uint) ([]model.Test, error)
	Update(test *model.Test) error
	Delete(id uint) error

	QuestionIDs(testID uint) ([]uint, error)
	LinkQuestions(testID uint, questionIDs []uint) error
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(test *model.Test) error {
	return r.db.Create(test).Error
}

func (r *testRepository) FindByID(id uint) (*model.Test, error) {
	var test model.Test
	if err := r.db.First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindAllByCreator(userID uint) ([]model.Test, error) {
	var tests []model.Test
	err := r.db.Where("criado_por = ?", userID).Order("created_at DESC").Find(&tests).Error
	return tests, err
}

func (r *testRepository) FindAllExcludingCreator(userID uint) ([]model.Test, error) {
	var tests []model.Test
	err := r.db.Where("criado_por <> ?", userID).Order("created_at DESC").Find(&tests).Error
	return tests, err
}

func (r *testRepository) Update(test *model.Test) error {
	return r.db.Save(test).Error
}

func (r *testRepository) Delete(id uint) error {
	return r.db.Delete(&model.Test{}, id).Error
}

func (r *testRepository) QuestionIDs(testID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.TestQuestion{}).
		Where("id_test = ?", testID).
		Pluck("id_questao", &ids).Error
	return ids, err
}

// LinkQuestions inserts test-question links, skipping ids already present so
// membership stays a set.
func (r *testRepository) LinkQuestions(testID uint, questionIDs []uint) error {
	if len(questionIDs) == 0 {
		return nil
	}
	existing, err := r.QuestionIDs(testID)
	if err != nil {
		return err
	}
	present := make(map[uint]bool, len(existing))
	for _, id := range existing {
		present[id] = true
	}

	var links []model.TestQuestion
	for _, id := range questionIDs {
		if !present[id] {
			links = append(links, model.TestQuestion{IDTest: testID, IDQuestao: id})
		}
	}
	if len(links) == 0 {
		return nil
	}
	return r.db.Create(&links).Error
}
