package Middleware

import (
	"net/http"

	"github.com/YeyeJames/jiale15/Models"
	"github.com/YeyeJames/jiale15/Utils/Token"

	"github.com/gin-gonic/gin"
)

func JwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := Token.TokenValid(c)
		if err != nil {
			c.String(http.StatusUnauthorized, "Unauthorized Token Invalid")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin gates the settings endpoints (therapists, treatments,
// accounts) to admin users.
func RequireAdmin(store *Models.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user_id, err := Token.ExtractTokenID(c)

		if err != nil {
			c.String(http.StatusUnauthorized, "Unauthorized Token Extraction")
			c.Abort()
			return
		}

		user, err := store.GetUserByID(user_id)
		if err != nil {
			c.String(http.StatusUnauthorized, "Unauthorized User Extraction")
			c.Abort()
			return
		}

		if user.Role != Models.RoleAdmin {
			c.String(http.StatusForbidden, "Unauthorized Not Enough Permission")
			c.Abort()
			return
		}

		c.Next()
	}
}
