package middleware

import (
	"net/http"

	"github.com/alysson-b/simulados-api/internal/dto"
	"github.com/gin-gonic/gin"
)

// APIKey rejects requests whose X-API-KEY header does not match the shared
// secret. Key issuance and rotation belong to the external auth service.
func APIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" || c.GetHeader("X-API-KEY") != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid or missing API key"})
			return
		}
		c.Next()
	}
}
