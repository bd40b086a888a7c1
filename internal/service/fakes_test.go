package service

// In-memory fakes of the repository interfaces used across the service tests.

import (
	"errors"

	"github.com/alysson-b/simulados-api/internal/model"
	"github.com/alysson-b/simulados-api/internal/repository"
	"gorm.io/gorm"
)

type fakeTestRepo struct {
	tests       map[uint]*model.Test
	links       map[uint][]uint // testID -> question ids
	nextID      uint
	questionErr error
	listErr     error
}

func newFakeTestRepo() *fakeTestRepo {
	return &fakeTestRepo{tests: map[uint]*model.Test{}, links: map[uint][]uint{}}
}

func (f *fakeTestRepo) Create(t *model.Test) error {
	f.nextID++
	t.ID = f.nextID
	cp := *t
	f.tests[t.ID] = &cp
	return nil
}

func (f *fakeTestRepo) FindByID(id uint) (*model.Test, error) {
	t, ok := f.tests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTestRepo) FindAllByCreator(userID uint) ([]model.Test, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.Test
	for _, t := range f.tests {
		if t.CriadoPor == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTestRepo) FindAllExcludingCreator(userID uint) ([]model.Test, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.Test
	for _, t := range f.tests {
		if t.CriadoPor != userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTestRepo) Update(t *model.Test) error {
	cp := *t
	f.tests[t.ID] = &cp
	return nil
}

func (f *fakeTestRepo) Delete(id uint) error {
	delete(f.tests, id)
	return nil
}

func (f *fakeTestRepo) QuestionIDs(testID uint) ([]uint, error) {
	if f.questionErr != nil {
		return nil, f.questionErr
	}
	return append([]uint(nil), f.links[testID]...), nil
}

func (f *fakeTestRepo) LinkQuestions(testID uint, questionIDs []uint) error {
	present := map[uint]bool{}
	for _, id := range f.links[testID] {
		present[id] = true
	}
	for _, id := range questionIDs {
		if !present[id] {
			f.links[testID] = append(f.links[testID], id)
			present[id] = true
		}
	}
	return nil
}

type fakeQuestionRepo struct {
	questions map[uint]*model.Question
	nextID    uint
	modules   map[uint][]uint // questionID -> linked module ids
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: map[uint]*model.Question{}, modules: map[uint][]uint{}}
}

func (f *fakeQuestionRepo) Create(q *model.Question) error {
	f.nextID++
	q.ID = f.nextID
	cp := *q
	f.questions[q.ID] = &cp
	return nil
}

func (f *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQuestionRepo) FindByIDs(ids []uint) ([]model.Question, error) {
	var out []model.Question
	for _, id := range ids {
		if q, ok := f.questions[id]; ok {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) FindAll() ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.questions {
		out = append(out, *q)
	}
	return out, nil
}

func (f *fakeQuestionRepo) FindByModule(moduleID uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.questions {
		if q.ModuloID == moduleID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) FindRandomByModule(moduleID uint, limit int) ([]model.Question, error) {
	all, _ := f.FindByModule(moduleID)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeQuestionRepo) LinkModules(questionID uint, moduleIDs []uint) error {
	f.modules[questionID] = append(f.modules[questionID], moduleIDs...)
	return nil
}

func (f *fakeQuestionRepo) CountByIDs(ids []uint) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := f.questions[id]; ok {
			n++
		}
	}
	return n, nil
}

type fakeAttemptRepo struct {
	attempts  map[uint]*model.Attempt
	histories []model.History
	nextID    uint
	// createErrs is drained one error per Create call; nil entries succeed.
	createErrs []error
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{attempts: map[uint]*model.Attempt{}}
}

func (f *fakeAttemptRepo) Create(a *model.Attempt) error {
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	f.nextID++
	a.ID = f.nextID
	cp := *a
	f.attempts[a.ID] = &cp
	return nil
}

func (f *fakeAttemptRepo) FindByID(id uint) (*model.Attempt, error) {
	a, ok := f.attempts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAttemptRepo) FindAllByTestAndUser(testID, userID uint) ([]model.Attempt, error) {
	var out []model.Attempt
	for _, a := range f.attempts {
		if a.IDTest == testID && a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAttemptRepo) Finalize(a *model.Attempt, record *model.History) error {
	stored, ok := f.attempts[a.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Status = a.Status
	stored.Score = a.Score
	stored.Accuracy = a.Accuracy
	f.histories = append(f.histories, *record)
	return nil
}

type answerKey struct{ attemptID, questionID uint }

type fakeAnswerRepo struct {
	answers map[answerKey]*model.Answer
	nextID  uint
	// attempts resolves answer rows to their owning user for CountsByUser.
	attempts *fakeAttemptRepo
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{answers: map[answerKey]*model.Answer{}}
}

func (f *fakeAnswerRepo) Create(a *model.Answer) error {
	f.nextID++
	a.ID = f.nextID
	cp := *a
	f.answers[answerKey{a.AttemptID, a.QuestaoID}] = &cp
	return nil
}

func (f *fakeAnswerRepo) Update(a *model.Answer) error {
	cp := *a
	f.answers[answerKey{a.AttemptID, a.QuestaoID}] = &cp
	return nil
}

func (f *fakeAnswerRepo) FindByAttemptAndQuestion(attemptID, questionID uint) (*model.Answer, error) {
	a, ok := f.answers[answerKey{attemptID, questionID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAnswerRepo) FindAllByAttempt(attemptID uint) ([]model.Answer, error) {
	var out []model.Answer
	for _, a := range f.answers {
		if a.AttemptID == attemptID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAnswerRepo) CountsByUser(userID uint) (*repository.AnswerCounts, error) {
	counts := &repository.AnswerCounts{}
	if f.attempts == nil {
		return counts, nil
	}
	for _, a := range f.answers {
		attempt, ok := f.attempts.attempts[a.AttemptID]
		if !ok || attempt.UserID != userID {
			continue
		}
		counts.Total++
		if a.Correta {
			counts.Correct++
		}
	}
	return counts, nil
}

type fakeProgressRepo struct {
	rows    map[answerKey]*model.Progress // key: (testID, userID)
	nextID  uint
	updates int
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{rows: map[answerKey]*model.Progress{}}
}

func (f *fakeProgressRepo) FindByTestAndUser(testID, userID uint) (*model.Progress, error) {
	p, ok := f.rows[answerKey{testID, userID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProgressRepo) Create(p *model.Progress) error {
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.rows[answerKey{p.IDTest, p.UserID}] = &cp
	return nil
}

func (f *fakeProgressRepo) Update(p *model.Progress) error {
	f.updates++
	cp := *p
	f.rows[answerKey{p.IDTest, p.UserID}] = &cp
	return nil
}

type fakeHistoryRepo struct {
	records  []model.History
	statsErr error
}

func (f *fakeHistoryRepo) FindAllByTest(testID uint) ([]model.History, error) {
	var out []model.History
	for _, r := range f.records {
		if r.IDTest == testID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) StatsByTest(testID uint) (*repository.TestStats, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	stats := &repository.TestStats{}
	var scoreSum, accSum float64
	for _, r := range f.records {
		if r.IDTest != testID {
			continue
		}
		stats.TotalAttempts++
		scoreSum += r.Score
		accSum += r.Accuracy
		if r.Score > stats.HighestScore {
			stats.HighestScore = r.Score
		}
	}
	if stats.TotalAttempts > 0 {
		stats.AverageScore = scoreSum / float64(stats.TotalAttempts)
		stats.AverageAccuracy = accSum / float64(stats.TotalAttempts)
	}
	return stats, nil
}

func (f *fakeHistoryRepo) FindAllByUser(userID uint) ([]model.History, error) {
	var out []model.History
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].UserID == userID {
			out = append(out, f.records[i])
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) HighestScoreByUser(userID uint) (float64, error) {
	var highest float64
	for _, r := range f.records {
		if r.UserID == userID && r.Score > highest {
			highest = r.Score
		}
	}
	return highest, nil
}

func (f *fakeHistoryRepo) UserHighestScore(testID, userID uint) (float64, error) {
	var highest float64
	for _, r := range f.records {
		if r.IDTest == testID && r.UserID == userID && r.Score > highest {
			highest = r.Score
		}
	}
	return highest, nil
}

func (f *fakeHistoryRepo) LatestByUser(userID uint) (*model.History, error) {
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].UserID == userID {
			cp := f.records[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

var errModuleStore = errors.New("module store unavailable")

type fakeModuleRepo struct {
	modules map[uint]string
	qmLinks map[uint][]uint // questionID -> module ids
	err     error
}

func newFakeModuleRepo() *fakeModuleRepo {
	return &fakeModuleRepo{modules: map[uint]string{}, qmLinks: map[uint][]uint{}}
}

func (f *fakeModuleRepo) SearchByName(search string, limit int) ([]model.Module, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Module
	for id, nome := range f.modules {
		out = append(out, model.Module{ID: id, Nome: nome})
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeModuleRepo) NamesByIDs(ids []uint) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []string
	for _, id := range ids {
		if nome, ok := f.modules[id]; ok {
			out = append(out, nome)
		}
	}
	return out, nil
}

func (f *fakeModuleRepo) ModuleIDsForQuestions(questionIDs []uint) ([]uint, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := map[uint]bool{}
	var out []uint
	for _, qid := range questionIDs {
		for _, mid := range f.qmLinks[qid] {
			if !seen[mid] {
				seen[mid] = true
				out = append(out, mid)
			}
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[uint]*model.User
}

func (f *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	if f.users == nil {
		return nil, errors.New("user store unavailable")
	}
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

// recordingNotifier captures test-change broadcasts.
type recordingNotifier struct {
	events []uint
}

func (n *recordingNotifier) NotifyTestUpdate(testID uint) {
	n.events = append(n.events, testID)
}
