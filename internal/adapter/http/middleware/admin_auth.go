package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hometheater_quote/internal/usecase"
)

// AdminRequired checks the session cookie on every request and redirects
// to loginPath when it is missing, expired or forged.
func AdminRequired(auth usecase.IAuthUseCase, cookieName, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || auth.Authorize(token) != nil {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
