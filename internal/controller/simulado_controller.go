package controller

import (
	"net/http"

	"github.com/alysson-b/simulados-api/internal/dto"
	"github.com/alysson-b/simulados-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SimuladoController exposes the test CRUD, the attempt lifecycle and the
// progress endpoints under /simulados.
type SimuladoController struct {
	testService     service.TestService
	attemptService  service.AttemptService
	progressService service.ProgressService
}

func NewSimuladoController(
	testService service.TestService,
	attemptService service.AttemptService,
	progressService service.ProgressService,
) *SimuladoController {
	return &SimuladoController{
		testService:     testService,
		attemptService:  attemptService,
		progressService: progressService,
	}
}

// ListTests godoc
// @Summary List tests for the requesting user
// @Description Returns the user's own tests, the available ones and the last finalized test.
// @Tags Simulados
// @Produce json
// @Success 200 {object} dto.ListTestsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /simulados [get]
func (c *SimuladoController) ListTests(ctx *gin.Context) {
	resp, err := c.testService.ListTests(userID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateTest godoc
// @Summary Create a test
// @Tags Simulados
// @Accept json
// @Produce json
// @Param body body dto.CreateTestRequest true "titulo and descricao"
// @Success 201 {object} model.Test
// @Failure 400 {object} dto.ErrorResponse
// @Router /simulados [post]
func (c *SimuladoController) CreateTest(ctx *gin.Context) {
	var req dto.CreateTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "titulo and descricao are required"})
		return
	}
	test, err := c.testService.CreateTest(userID(ctx), req)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, test)
}

// UpdateTest godoc
// @Summary Update a test's title and description
// @Tags Simulados
// @Accept json
// @Produce json
// @Param testId path int true "Test ID"
// @Param body body dto.UpdateTestRequest true "titulo and descricao"
// @Success 200 {object} model.Test
// @Failure 404 {object} dto.ErrorResponse
// @Router /simulados/{testId} [put]
func (c *SimuladoController) UpdateTest(ctx *gin.Context) {
	testID, ok := paramID(ctx, "testId")
	if !ok {
		return
	}
	var req dto.UpdateTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "titulo and descricao are required"})
		return
	}
	test, err := c.testService.UpdateTest(testID, req)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, test)
}

// DeleteTest godoc
// @Summary Delete a test
// @Tags Simulados
// @Produce json
// @Param testId path int true "Test ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /simulados/{testId} [delete]
func (c *SimuladoController) DeleteTest(ctx *gin.Context) {
	testID, ok := paramID(ctx, "testId")
	if !ok {
		return
	}
	if err := c.testService.DeleteTest(testID); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "test deleted"})
}

// AddRandomQuestions godoc
// @Summary Add random questions from a module to a test
// @Tags Simulados
// @Accept json
// @Produce json
// @Param testId path int true "Test ID"
// @Param body body dto.AddRandomQuestionsRequest true "quantidade and idModulo"
// @Success 200 {object} dto.RandomQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /simulados/{testId}/questoes [post]
func (c *SimuladoController) AddRandomQuestions(ctx *gin.Context) {
	testID, ok := paramID(ctx, "testId")
	if !ok {
		return
	}
	var req dto.AddRandomQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "quantidade and idModulo are required"})
		return
	}
	resp, err := c.testService.AddRandomQuestions(testID, req.Quantidade, req.IDModulo)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// AddQuestions godoc
// @Summary Add an explicit list of questions to a test
// @Tags Simulados
// @Accept json
// @Produce json
// @Param testId path int true "Test ID"
// @Param body body dto.AddQuestionsRequest true "question ids"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /simulados/{testId}/questoes/lote [post]
func (c *SimuladoController) AddQuestions(ctx *gin.Context) {
	testID, ok := paramID(ctx, "testId")
	if !ok {
		return
	}
	var req dto.AddQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "no questions provided"})
		return
	}
	if err := c.testService.AddQuestions(testID, req.Questoes); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "questions added to test"})
}

// ListTestQuestions godoc
// @Summary List the questions linked into a test
// @Tags Simulados
// @Produce json
// @Param testId path int true "Test ID"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /simulados/{testId}/questoes [get]
func (c *SimuladoController) ListTestQuestions(ctx *gin.Context) {
	testID, ok := paramID(ctx, "testId")
	if !ok {
		return
	}
	questions, err := c.testService.ListTestQuestions(testID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetTestDetails godoc
// @Summary Get test details with aggregate statistics
// @Tags Simulados
// @Produce json
// @Param testId path int true "Test ID"
// @Success 200 {object} dto.TestDetailsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /simulados/{testId}/detalhes [get]
func (c *SimuladoController) GetTestDetails(ctx *gin.Context) {
	testID, ok := paramID(ctx, "testId")
	if !ok {
		return
	}
	resp, err := c.testService.GetTestDetails(testID, userID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetTestHistory godoc
// @Summary List the finalization history of a test
// @Tags Simulados
// @Produce json
// @Param testId path int true "Test ID"
// @Success 200 {object} dto.TestHistoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /simulados/{testId}/historico [get]
func (c *SimuladoController) GetTestHistory(ctx *gin.Context) {
	testID, ok := paramID(ctx, "testId")
	if !ok {
		return
	}
	resp, err := c.testService.GetTestHistory(testID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// StartAttempt godoc
// @Summary Start a new attempt on a test
// @Description Allocates the next attempt number for the user and returns prior attempts.
// @Tags Attempts
// @Produce json
// @Param testId path int true "Test ID"
// @Success 201 {object} dto.StartAttemptResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /simulados/{testId}/iniciar [post]
func (c *SimuladoController) StartAttempt(ctx *gin.Context) {
	testID, ok := paramID(ctx, "testId")
	if !ok {
		return
	}
	resp, err := c.attemptService.StartAttempt(testID, userID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	log.Info().Uint("testID", testID).Int("attemptNumber", resp.Attempt.AttemptNumber).Msg("attempt started")
	ctx.JSON(http.StatusCreated, resp)
}

// RecordAnswer godoc
// @Summary Record an answer for an attempt
// @Description Upserts the answer for (attempt, question); 201 on first submission, 200 on overwrite.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param testId path int true "Test ID"
// @Param body body dto.RecordAnswerRequest true "attempt_id, questao_id, resposta"
// @Success 200 {object} dto.RecordAnswerResponse
// @Success 201 {object} dto.RecordAnswerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /simulados/{testId}/responder [post]
func (c *SimuladoController) RecordAnswer(ctx *gin.Context) {
	if _, ok := paramID(ctx, "testId"); !ok {
		return
	}
	var req dto.RecordAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "attempt_id, questao_id and resposta are required"})
		return
	}
	resp, created, err := c.attemptService.RecordAnswer(req)
	if err != nil {
		fail(ctx, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, resp)
}

// FinalizeAttempt godoc
// @Summary Finalize an attempt and compute its score
// @Tags Attempts
// @Accept json
// @Produce json
// @Param testId path int true "Test ID"
// @Param body body dto.FinalizeAttemptRequest true "attempt_id"
// @Success 200 {object} dto.FinalizeAttemptResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /simulados/{testId}/finalizar [post]
func (c *SimuladoController) FinalizeAttempt(ctx *gin.Context) {
	if _, ok := paramID(ctx, "testId"); !ok {
		return
	}
	var req dto.FinalizeAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "attempt_id is required"})
		return
	}
	resp, err := c.attemptService.FinalizeAttempt(req.AttemptID, userID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// LoadProgress godoc
// @Summary Load saved progress for a test
// @Description Missing progress is a cold start and returns empty defaults.
// @Tags Progress
// @Produce json
// @Param testId path int true "Test ID"
// @Success 200 {object} dto.LoadProgressResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /simulados/{testId}/progresso [get]
func (c *SimuladoController) LoadProgress(ctx *gin.Context) {
	testID, ok := paramID(ctx, "testId")
	if !ok {
		return
	}
	resp, err := c.progressService.LoadProgress(testID, userID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SaveProgress godoc
// @Summary Save or update progress for a test
// @Description Upsert; a payload identical to the stored state is a no-op.
// @Tags Progress
// @Accept json
// @Produce json
// @Param testId path int true "Test ID"
// @Param body body dto.SaveProgressRequest true "ultimaQuestao and respostas"
// @Success 200 {object} dto.SaveProgressResponse
// @Success 201 {object} dto.SaveProgressResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /simulados/{testId}/progresso [post]
func (c *SimuladoController) SaveProgress(ctx *gin.Context) {
	c.saveProgress(ctx, false)
}

// UpdateProgress godoc
// @Summary Update existing progress for a test
// @Description Fails with 404 when no progress exists yet.
// @Tags Progress
// @Accept json
// @Produce json
// @Param testId path int true "Test ID"
// @Param body body dto.SaveProgressRequest true "ultimaQuestao and respostas"
// @Success 200 {object} dto.SaveProgressResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /simulados/{testId}/progresso [patch]
func (c *SimuladoController) UpdateProgress(ctx *gin.Context) {
	c.saveProgress(ctx, true)
}

func (c *SimuladoController) saveProgress(ctx *gin.Context, mustExist bool) {
	testID, ok := paramID(ctx, "testId")
	if !ok {
		return
	}
	var req dto.SaveProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed progress payload"})
		return
	}
	resp, created, err := c.progressService.SaveProgress(testID, userID(ctx), req, mustExist)
	if err != nil {
		fail(ctx, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, resp)
}
