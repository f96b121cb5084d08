package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripway/middleware"
	"tripway/models"
	"tripway/services/bookingsvc"
	"tripway/services/review"
	"tripway/services/travelpkg"
	"tripway/utils"
)

// AgentDashboardHandler serves the approved agent's management view.
type AgentDashboardHandler struct {
	Packages travelpkg.PackageService
	Bookings bookingsvc.BookingService
	Reviews  review.ReviewService
}

// Dashboard renders the agent's packages with booking stats plus the
// revenue aggregate for their portfolio.
func (h *AgentDashboardHandler) Dashboard(c *gin.Context) {
	logger := getLogger(c).With(zap.String("handler", "AgentDashboard"))
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	ctx := c.Request.Context()
	agentID := sess.User.UserID

	dashboard, err := h.Bookings.GetAgentDashboard(ctx, sess.AuthToken, agentID)
	if err != nil {
		// The aggregate endpoint is newer than the per-package one; fall
		// back to the stats listing so older gateways still render.
		logger.Warn("agent dashboard aggregate unavailable", zap.Error(err))
		stats, statsErr := h.Packages.GetAgentPackagesWithStats(ctx, sess.AuthToken, agentID)
		if statsErr != nil {
			utils.JSONError(c, http.StatusBadGateway, statsErr.Error(), "")
			return
		}
		c.JSON(http.StatusOK, page(c, gin.H{"packageStats": stats}))
		return
	}

	c.JSON(http.StatusOK, page(c, gin.H{"dashboard": dashboard}))
}

// PackageStats lists the agent's packages with their booking counts,
// revenue and average rating.
func (h *AgentDashboardHandler) PackageStats(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	stats, err := h.Packages.GetAgentPackagesWithStats(c.Request.Context(), sess.AuthToken, sess.User.UserID)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"packageStats": stats})
}

// ReplyToReview posts the agent's reply under a customer review.
func (h *AgentDashboardHandler) ReplyToReview(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return
	}

	var input models.ReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Reviews.ReplyToReview(c.Request.Context(), sess.AuthToken, id, input); err != nil {
		utils.JSONError(c, http.StatusBadGateway, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reply posted"})
}
