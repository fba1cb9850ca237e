package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venuehub/backend/models"
	"github.com/venuehub/backend/utils"
)

// RequireOwner gates owner-only routes (employee approval, pending
// listing). Must run after SessionAuth.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("login required"))
			c.Abort()
			return
		}
		if role != models.RoleOwner {
			utils.RespondError(c, http.StatusForbidden, errors.New("owner access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
