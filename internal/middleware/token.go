package middleware

import (
	"github.com/gin-gonic/gin"

	"shoply_back_end/internal/apperr"
	"shoply_back_end/internal/service"
)

// TokenRequired vérifie le header brut "token" (pas de schéma Bearer) et pose
// l'email vérifié dans le contexte gin. L'utilisateur est relu en base par les
// services à chaque appel.
func TokenRequired(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, err := auth.VerifyToken(c.GetHeader("token"))
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"message": apperr.Message(err)})
			c.Abort()
			return
		}
		c.Set("email", email)
		c.Next()
	}
}
