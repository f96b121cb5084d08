package middleware

import (
	"net/http"

	"tripway/models"

	"github.com/gin-gonic/gin"
)

// RequireRoles gates a route group to a role set. The decision is a
// pure function of the resolved session and is re-evaluated on every
// request: no session → sign-in; wrong role → home. An empty role set
// admits any authenticated caller.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		sess, ok := CurrentSession(c)
		if !ok || !sess.IsAuthenticated() {
			c.Redirect(http.StatusFound, "/signin")
			c.Abort()
			return
		}
		if len(allowed) > 0 && !allowed[sess.User.Role] {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireApprovedAgent additionally keeps agents still awaiting admin
// approval off the agent dashboard even though they are authenticated.
func RequireApprovedAgent() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := CurrentSession(c)
		if !ok || !sess.IsAuthenticated() {
			c.Redirect(http.StatusFound, "/signin")
			c.Abort()
			return
		}
		if sess.User.Role != models.RoleAgent || sess.User.ApprovalStatus != models.ApprovalApproved {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
