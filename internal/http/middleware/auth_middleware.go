package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/domain"
)

// AuthMiddleware creates the bearer-token gate every protected route passes
// through. It distinguishes a missing token, a forged or malformed token, an
// expired token, and a revoked session, and on success attaches the resolved
// user to the request context.
func AuthMiddleware(tokenSvc domain.TokenService, sessionRepo domain.SessionRepository) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrMissingToken.Error()})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrMissingToken.Error()})
			c.Abort()
			return
		}

		claims, err := tokenSvc.ValidateSessionToken(tokenParts[1])
		if err != nil {
			if errors.Is(err, domain.ErrTokenExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			}
			c.Abort()
			return
		}

		// The session store is the revocation authority: a logged-out token
		// still carries a valid signature but its session is gone.
		session, err := sessionRepo.FindByID(c.Request.Context(), claims.SessionID)
		if err != nil {
			if errors.Is(err, domain.ErrSessionExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			}
			c.Abort()
			return
		}

		if session.UserID != claims.UserID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			c.Abort()
			return
		}

		c.Set("user_id", fmt.Sprintf("%d", claims.UserID))
		c.Set("user_role", claims.Role)
		c.Set("session_id", claims.SessionID)

		c.Next()
	})
}
