package controller

import (
	"net/http"

	"github.com/alysson-b/simulados-api/internal/dto"
	"github.com/alysson-b/simulados-api/internal/service"
	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// CreateQuestion godoc
// @Summary Create a question with its module links
// @Tags Questoes
// @Accept json
// @Produce json
// @Param body body dto.CreateQuestionRequest true "question fields"
// @Success 201 {object} dto.CreateQuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /questoes [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "all required question fields must be filled and at least one module selected"})
		return
	}
	question, err := c.questionService.CreateQuestion(req)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreateQuestionResponse{Message: "question created", Questao: *question})
}

// GetQuestion godoc
// @Summary Get a question by id
// @Tags Questoes
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /questoes/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	question, err := c.questionService.GetQuestion(id)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// ListAllQuestions godoc
// @Summary List every question
// @Tags Questoes
// @Produce json
// @Success 200 {array} dto.QuestionResponseDTO
// @Router /questoes [get]
func (c *QuestionController) ListAllQuestions(ctx *gin.Context) {
	questions, err := c.questionService.ListAllQuestions()
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// ListQuestionsByModule godoc
// @Summary List the questions owned by a module
// @Tags Questoes
// @Produce json
// @Param idModulo path int true "Module ID"
// @Success 200 {array} dto.QuestionResponseDTO
// @Router /questoes/modulo/{idModulo} [get]
func (c *QuestionController) ListQuestionsByModule(ctx *gin.Context) {
	moduleID, ok := paramID(ctx, "idModulo")
	if !ok {
		return
	}
	questions, err := c.questionService.ListQuestionsByModule(moduleID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}
