package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripway/middleware"
	"tripway/models"
	"tripway/services/session"
	"tripway/services/user"
	"tripway/utils"
)

// ProfileHandler serves the signed-in user's profile view. Updates go
// through the user-service and then back into the session so the copy
// the navigation renders never drifts.
type ProfileHandler struct {
	Users    user.UserService
	Sessions session.SessionService
}

// Show renders the profile, refreshed from the user-service where
// possible so role or approval changes made by an admin show up.
func (h *ProfileHandler) Show(c *gin.Context) {
	logger := getLogger(c).With(zap.String("handler", "Profile"))
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	refreshed, err := h.Sessions.RefreshUserData(c.Request.Context(), sess.SessionID)
	if err != nil {
		logger.Debug("profile refresh failed, serving cached copy", zap.Error(err))
		c.JSON(http.StatusOK, page(c, gin.H{"profile": sess.User}))
		return
	}
	c.JSON(http.StatusOK, page(c, gin.H{"profile": refreshed.User}))
}

// Update edits the profile and writes the result back into the session.
func (h *ProfileHandler) Update(c *gin.Context) {
	logger := getLogger(c).With(zap.String("handler", "UpdateProfile"))
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var input models.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	updated, err := h.Users.UpdateProfile(ctx, sess.AuthToken, input)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, err.Error(), "")
		return
	}

	refreshed, err := h.Sessions.UpdateUser(ctx, sess.SessionID, *updated)
	if err != nil {
		logger.Warn("profile updated but session sync failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"profile": updated, "message": "Profile updated successfully"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": refreshed.User, "message": "Profile updated successfully"})
}
