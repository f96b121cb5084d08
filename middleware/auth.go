// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"tripway/models"
	"tripway/services/session"
	"tripway/utils"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// SessionMiddleware resolves the caller's session from the signed
// session token. With required=false the request continues anonymously
// when no valid token is present; with required=true it is redirected
// to the sign-in view instead.
func SessionMiddleware(sessions session.SessionService, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			rejectOrContinue(c, required)
			return
		}

		sid, err := utils.ExtractSessionIDFromToken(tokenString)
		if err != nil {
			rejectOrContinue(c, required)
			return
		}

		sess, err := sessions.Current(c.Request.Context(), sid)
		if err != nil {
			rejectOrContinue(c, required)
			return
		}

		// Stamp the request context so the gateway's 401 hook can find
		// the session to tear down.
		c.Request = c.Request.WithContext(session.WithSessionID(c.Request.Context(), sid))
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

func rejectOrContinue(c *gin.Context, required bool) {
	if required {
		c.Redirect(http.StatusFound, "/signin")
		c.Abort()
		return
	}
	c.Next()
}

// CurrentSession returns the resolved session for the request, if any.
func CurrentSession(c *gin.Context) (*models.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*models.Session)
	return sess, ok && sess != nil
}
