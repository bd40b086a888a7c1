package controller

import (
	"net/http"
	"strconv"

	"github.com/alysson-b/simulados-api/internal/apperr"
	"github.com/alysson-b/simulados-api/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// fail maps a taxonomy error to its HTTP status. Upstream and internal details
// are logged here and never reach the response body.
func fail(ctx *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: apperr.Message(err)})
	case apperr.KindNotFound:
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: apperr.Message(err)})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("request failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: apperr.Message(err)})
	}
}

// paramID parses a numeric path parameter; the bool result reports success
// (the error response is already written on failure).
func paramID(ctx *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name + " format"})
		return 0, false
	}
	return uint(v), true
}

// userID reads the identity the external auth layer forwards in the user-id
// header. Zero means the header was absent or malformed.
func userID(ctx *gin.Context) uint {
	v, err := strconv.ParseUint(ctx.GetHeader("user-id"), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}
