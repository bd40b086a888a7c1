package controller

import (
	"net/http"

	"github.com/alysson-b/simulados-api/internal/service"
	"github.com/gin-gonic/gin"
)

type ModuleController struct {
	moduleService service.ModuleService
}

func NewModuleController(moduleService service.ModuleService) *ModuleController {
	return &ModuleController{moduleService: moduleService}
}

// SearchModules godoc
// @Summary Search modules by name
// @Tags Modulos
// @Produce json
// @Param search query string true "name fragment"
// @Success 200 {array} dto.ModuleDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /modulos [get]
func (c *ModuleController) SearchModules(ctx *gin.Context) {
	modules, err := c.moduleService.SearchModules(ctx.Query("search"))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, modules)
}
