package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/users"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/shared/apperr"
)

const ctxKeyUser = "current_user"

// BearerAuth resolves an optional Authorization header into the current
// user. Guests pass through; RequireAuth gates the routes that need one.
func BearerAuth(tokens *users.Tokens, svc *users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		claims, err := tokens.Verify(raw)
		if err != nil {
			c.Next()
			return
		}

		u, err := svc.ByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxKeyUser, u)
		c.Next()
	}
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); ok {
			c.Next()
			return
		}
		Fail(c, apperr.UnauthorizedErr("Authentication required."))
	}
}

func CurrentUser(c *gin.Context) (users.User, bool) {
	v, ok := c.Get(ctxKeyUser)
	if !ok {
		return users.User{}, false
	}
	u, ok := v.(users.User)
	return u, ok
}
