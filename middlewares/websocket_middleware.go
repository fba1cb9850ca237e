package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/venuehub/backend/utils"
)

// WebSocketAuth authenticates the upgrade request. Browsers cannot set
// headers on websocket connects, so the token may come from the query
// string as well as the session cookie.
func WebSocketAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Query("token")
		if tokenString == "" {
			tokenString, _ = c.Cookie(utils.SessionCookie)
		}
		if tokenString == "" {
			c.AbortWithStatus(401)
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatus(401)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("restaurant_id", claims.RestaurantID)
		c.Next()
	}
}
