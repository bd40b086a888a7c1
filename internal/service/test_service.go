package service

import (
	"fmt"

	"github.com/alysson-b/simulados-api/internal/apperr"
	"github.com/alysson-b/simulados-api/internal/dto"
	"github.com/alysson-b/simulados-api/internal/model"
	"github.com/alysson-b/simulados-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type TestService interface {
	ListTests(userID uint) (*dto.ListTestsResponse, error)
	CreateTest(userID uint, req dto.CreateTestRequest) (*model.Test, error)
	UpdateTest(testID uint, req dto.UpdateTestRequest) (*model.Test, error)
	DeleteTest(testID uint) error
	AddQuestions(testID uint, questionIDs []uint) error
	AddRandomQuestions(testID uint, quantity int, moduleID uint) (*dto.RandomQuestionsResponse, error)
	ListTestQuestions(testID uint) ([]dto.QuestionResponseDTO, error)
	GetTestDetails(testID, userID uint) (*dto.TestDetailsResponse, error)
	GetTestHistory(testID uint) (*dto.TestHistoryResponse, error)
}

type testService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	moduleRepo   repository.ModuleRepository
	historyRepo  repository.HistoryRepository
	userRepo     repository.UserRepository
	notifier     TestNotifier
}

func NewTestService(
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	moduleRepo repository.ModuleRepository,
	historyRepo repository.HistoryRepository,
	userRepo repository.UserRepository,
	notifier TestNotifier,
) TestService {
	return &testService{
		testRepo:     testRepo,
		questionRepo: questionRepo,
		moduleRepo:   moduleRepo,
		historyRepo:  historyRepo,
		userRepo:     userRepo,
		notifier:     notifier,
	}
}

// enrich decorates a test with module names and historical accuracy. Every
// lookup is optional and degrades to a default.
func (s *testService) enrich(test model.Test) dto.EnrichedTestDTO {
	d := dto.EnrichedTestDTO{
		ID:                test.ID,
		Titulo:            test.Titulo,
		Descricao:         test.Descricao,
		CriadoPor:         test.CriadoPor,
		Rating:            test.Rating,
		CriadoEm:          test.CreatedAt,
		Modulos:           []string{},
		PorcentagemAcerto: "0%",
	}

	d.Modulos = orEmpty(fetchOrDefault("test modules", []string{}, func() ([]string, error) {
		return s.moduleNamesForTest(test.ID)
	}))

	stats := fetchOrDefault("test stats", &repository.TestStats{}, func() (*repository.TestStats, error) {
		return s.historyRepo.StatsByTest(test.ID)
	})
	if stats.TotalAttempts > 0 {
		d.PorcentagemAcerto = fmt.Sprintf("%.2f%%", stats.AverageAccuracy)
	}
	return d
}

func (s *testService) moduleNamesForTest(testID uint) ([]string, error) {
	questionIDs, err := s.testRepo.QuestionIDs(testID)
	if err != nil {
		return nil, err
	}
	moduleIDs, err := s.moduleRepo.ModuleIDsForQuestions(questionIDs)
	if err != nil {
		return nil, err
	}
	return s.moduleRepo.NamesByIDs(moduleIDs)
}

func (s *testService) ListTests(userID uint) (*dto.ListTestsResponse, error) {
	if userID == 0 {
		return nil, apperr.Validation("userId is required")
	}

	mine, err := s.testRepo.FindAllByCreator(userID)
	if err != nil {
		return nil, apperr.Upstream("failed to list tests", err)
	}
	available, err := s.testRepo.FindAllExcludingCreator(userID)
	if err != nil {
		return nil, apperr.Upstream("failed to list tests", err)
	}

	resp := &dto.ListTestsResponse{
		MeusTestes:        make([]dto.EnrichedTestDTO, 0, len(mine)),
		TestesDisponiveis: make([]dto.EnrichedTestDTO, 0, len(available)),
	}
	for _, t := range mine {
		resp.MeusTestes = append(resp.MeusTestes, s.enrich(t))
	}
	for _, t := range available {
		resp.TestesDisponiveis = append(resp.TestesDisponiveis, s.enrich(t))
	}

	// The last finalized test is informational; absence or failure just leaves
	// it null.
	if latest, err := s.historyRepo.LatestByUser(userID); err == nil {
		if test, err := s.testRepo.FindByID(latest.IDTest); err == nil {
			d := s.enrich(*test)
			d.PorcentagemAcerto = fmt.Sprintf("%.2f%%", latest.Accuracy)
			resp.UltimoTeste = &d
		}
	}

	return resp, nil
}

func (s *testService) CreateTest(userID uint, req dto.CreateTestRequest) (*model.Test, error) {
	if userID == 0 {
		return nil, apperr.Validation("userId is required")
	}
	if req.Titulo == "" || req.Descricao == "" {
		return nil, apperr.Validation("titulo and descricao are required")
	}

	test := &model.Test{
		Titulo:    req.Titulo,
		Descricao: req.Descricao,
		CriadoPor: userID,
	}
	if err := s.testRepo.Create(test); err != nil {
		return nil, apperr.Upstream("failed to create test", err)
	}
	log.Info().Uint("testID", test.ID).Uint("userID", userID).Msg("test created")
	return test, nil
}

func (s *testService) UpdateTest(testID uint, req dto.UpdateTestRequest) (*model.Test, error) {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		return nil, storeErr(err, "test not found", "failed to load test")
	}

	test.Titulo = req.Titulo
	test.Descricao = req.Descricao
	if err := s.testRepo.Update(test); err != nil {
		return nil, apperr.Upstream("failed to update test", err)
	}

	s.notifier.NotifyTestUpdate(testID)
	return test, nil
}

func (s *testService) DeleteTest(testID uint) error {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		return storeErr(err, "test not found", "failed to load test")
	}
	if err := s.testRepo.Delete(testID); err != nil {
		return apperr.Upstream("failed to delete test", err)
	}
	s.notifier.NotifyTestUpdate(testID)
	return nil
}

// AddQuestions links the given questions into the test. All ids must exist;
// ids already linked are skipped.
func (s *testService) AddQuestions(testID uint, questionIDs []uint) error {
	if len(questionIDs) == 0 {
		return apperr.Validation("no questions provided")
	}
	if _, err := s.testRepo.FindByID(testID); err != nil {
		return storeErr(err, "test not found", "failed to load test")
	}

	unique := make([]uint, 0, len(questionIDs))
	seen := make(map[uint]bool, len(questionIDs))
	for _, id := range questionIDs {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	count, err := s.questionRepo.CountByIDs(unique)
	if err != nil {
		return apperr.Upstream("failed to verify questions", err)
	}
	if count != int64(len(unique)) {
		return apperr.Validation("some of the provided questions do not exist")
	}

	if err := s.testRepo.LinkQuestions(testID, unique); err != nil {
		return apperr.Upstream("failed to add questions to test", err)
	}
	s.notifier.NotifyTestUpdate(testID)
	return nil
}

// AddRandomQuestions picks up to quantity questions from the module and links
// the ones not already in the test.
func (s *testService) AddRandomQuestions(testID uint, quantity int, moduleID uint) (*dto.RandomQuestionsResponse, error) {
	if quantity <= 0 || moduleID == 0 {
		return nil, apperr.Validation("quantidade and idModulo are required")
	}
	if _, err := s.testRepo.FindByID(testID); err != nil {
		return nil, storeErr(err, "test not found", "failed to load test")
	}

	questions, err := s.questionRepo.FindRandomByModule(moduleID, quantity)
	if err != nil {
		return nil, apperr.Upstream("failed to pick questions", err)
	}

	ids := make([]uint, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	if err := s.testRepo.LinkQuestions(testID, ids); err != nil {
		return nil, apperr.Upstream("failed to add questions to test", err)
	}
	s.notifier.NotifyTestUpdate(testID)

	resp := &dto.RandomQuestionsResponse{
		Message:  "random questions added to test",
		Questoes: make([]dto.QuestionResponseDTO, 0, len(questions)),
	}
	for _, q := range questions {
		var d dto.QuestionResponseDTO
		copier.Copy(&d, &q)
		resp.Questoes = append(resp.Questoes, d)
	}
	return resp, nil
}

// ListTestQuestions returns the full question rows linked into the test.
func (s *testService) ListTestQuestions(testID uint) ([]dto.QuestionResponseDTO, error) {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		return nil, storeErr(err, "test not found", "failed to load test")
	}
	ids, err := s.testRepo.QuestionIDs(testID)
	if err != nil {
		return nil, apperr.Upstream("failed to load test questions", err)
	}
	questions, err := s.questionRepo.FindByIDs(ids)
	if err != nil {
		return nil, apperr.Upstream("failed to load questions", err)
	}

	dtos := make([]dto.QuestionResponseDTO, 0, len(questions))
	for i := range questions {
		var d dto.QuestionResponseDTO
		copier.Copy(&d, &questions[i])
		dtos = append(dtos, d)
	}
	return dtos, nil
}

// GetTestDetails joins test metadata with aggregate statistics. Only the test
// lookup is mandatory; every other sub-lookup degrades to a default.
func (s *testService) GetTestDetails(testID, userID uint) (*dto.TestDetailsResponse, error) {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		return nil, storeErr(err, "test not found", "failed to load test")
	}

	stats := fetchOrDefault("test stats", &repository.TestStats{}, func() (*repository.TestStats, error) {
		return s.historyRepo.StatsByTest(testID)
	})

	userHighest := fetchOrDefault("user highest score", 0.0, func() (float64, error) {
		return s.historyRepo.UserHighestScore(testID, userID)
	})

	creator := fetchOrDefault("creator name", "Desconhecido", func() (string, error) {
		u, err := s.userRepo.FindByID(test.CriadoPor)
		if err != nil {
			return "", err
		}
		return u.Nome, nil
	})

	questionIDs := orEmpty(fetchOrDefault("test questions", []uint{}, func() ([]uint, error) {
		return s.testRepo.QuestionIDs(testID)
	}))

	moduleNames := orEmpty(fetchOrDefault("module names", []string{}, func() ([]string, error) {
		moduleIDs, err := s.moduleRepo.ModuleIDsForQuestions(questionIDs)
		if err != nil {
			return nil, err
		}
		return s.moduleRepo.NamesByIDs(moduleIDs)
	}))

	accuracy := "0%"
	if stats.TotalAttempts > 0 {
		accuracy = fmt.Sprintf("%.2f%%", stats.AverageAccuracy)
	}

	return &dto.TestDetailsResponse{
		Titulo:              test.Titulo,
		Descricao:           test.Descricao,
		Rating:              test.Rating,
		PorcentagemAcerto:   accuracy,
		TotalResolucoes:     stats.TotalAttempts,
		MaiorPontuacao:      stats.HighestScore,
		MinhaMaiorPontuacao: userHighest,
		Criador:             creator,
		Modulos:             moduleNames,
		TotalQuestoes:       len(questionIDs),
		Questoes:            questionIDs,
	}, nil
}

func (s *testService) GetTestHistory(testID uint) (*dto.TestHistoryResponse, error) {
	records, err := s.historyRepo.FindAllByTest(testID)
	if err != nil {
		return nil, apperr.Upstream("failed to load test history", err)
	}
	if len(records) == 0 {
		return nil, apperr.NotFound("no history found for this test")
	}
	return &dto.TestHistoryResponse{Historico: records}, nil
}
