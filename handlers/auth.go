package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripway/middleware"
	"tripway/models"
	"tripway/services/session"
	"tripway/utils"
)

// AuthHandler serves sign-in, registration and sign-out.
type AuthHandler struct {
	Sessions session.SessionService
}

// SignIn authenticates a visitor and opens a session.
func (h *AuthHandler) SignIn(c *gin.Context) {
	logger := getLogger(c).With(zap.String("handler", "SignIn"))

	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	outcome := h.Sessions.Login(c.Request.Context(), creds)
	if !outcome.Success {
		c.JSON(http.StatusUnauthorized, gin.H{"error": outcome.Message})
		return
	}

	logger.Info("user signed in", zap.String("email", creds.Email))
	c.JSON(http.StatusOK, gin.H{
		"token":    outcome.SessionToken,
		"user":     outcome.User,
		"redirect": dashboardPath(outcome.User),
	})
}

// SignUp registers a new customer or agent account. Customers come back
// signed in; agents get a pending-approval notice and no session.
func (h *AuthHandler) SignUp(c *gin.Context) {
	logger := getLogger(c).With(zap.String("handler", "SignUp"))

	var input models.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	outcome := h.Sessions.Register(c.Request.Context(), input)
	if !outcome.Success {
		c.JSON(http.StatusBadRequest, gin.H{"error": outcome.Message})
		return
	}

	if outcome.PendingApproval {
		c.JSON(http.StatusCreated, gin.H{
			"message":  "Registration successful! Your agent account is pending admin approval.",
			"redirect": "/signin",
		})
		return
	}
	if outcome.SessionToken == "" {
		c.JSON(http.StatusCreated, gin.H{
			"message":  "Registration successful! Please sign in.",
			"redirect": "/signin",
		})
		return
	}

	logger.Info("user registered", zap.String("email", input.Email))
	c.JSON(http.StatusCreated, gin.H{
		"token":    outcome.SessionToken,
		"user":     outcome.User,
		"redirect": dashboardPath(outcome.User),
	})
}

// SignInView renders the sign-in form. Visitors who already hold a
// session are sent straight to their dashboard instead.
func (h *AuthHandler) SignInView(c *gin.Context) {
	if sess, ok := middleware.CurrentSession(c); ok && sess.IsAuthenticated() {
		c.Redirect(http.StatusFound, dashboardPath(&sess.User))
		return
	}
	c.JSON(http.StatusOK, page(c, gin.H{
		"form":   "signin",
		"action": "/auth/signin",
	}))
}

// RegisterView renders the registration form.
func (h *AuthHandler) RegisterView(c *gin.Context) {
	if sess, ok := middleware.CurrentSession(c); ok && sess.IsAuthenticated() {
		c.Redirect(http.StatusFound, dashboardPath(&sess.User))
		return
	}
	c.JSON(http.StatusOK, page(c, gin.H{
		"form":   "register",
		"action": "/auth/register",
		"roles":  []string{models.RoleCustomer, models.RoleAgent},
	}))
}

// SignOut tears down the session behind the bearer token. Always
// succeeds from the caller's point of view.
func (h *AuthHandler) SignOut(c *gin.Context) {
	if token := bearerToken(c); token != "" {
		if sessionID, err := utils.ExtractSessionIDFromToken(token); err == nil {
			h.Sessions.Logout(c.Request.Context(), sessionID)
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out", "redirect": "/"})
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func dashboardPath(user *models.User) string {
	if user == nil {
		return "/"
	}
	switch user.Role {
	case models.RoleAdmin:
		return "/admin-dashboard"
	case models.RoleAgent:
		if user.IsPendingAgent() {
			return "/"
		}
		return "/agent-dashboard"
	default:
		return "/user-dashboard"
	}
}
