package controller

import (
	"net/http"

	"github.com/alysson-b/simulados-api/internal/service"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetPerformance godoc
// @Summary Get the requesting user's overall performance
// @Description Accuracy over every recorded answer plus the best score across all tests.
// @Tags Usuarios
// @Produce json
// @Success 200 {object} dto.UserPerformanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /usuarios/desempenho [get]
func (c *UserController) GetPerformance(ctx *gin.Context) {
	resp, err := c.userService.GetPerformance(userID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetHistory godoc
// @Summary List the requesting user's finalization history, newest first
// @Tags Usuarios
// @Produce json
// @Success 200 {object} dto.UserHistoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /usuarios/historico [get]
func (c *UserController) GetHistory(ctx *gin.Context) {
	resp, err := c.userService.GetHistory(userID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
