package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripway/middleware"
	"tripway/models"
	"tripway/services/assistance"
	"tripway/utils"
)

// AssistanceHandler serves the help-request views: the public form,
// the customer's own requests and the admin triage actions.
type AssistanceHandler struct {
	Assistance assistance.AssistanceService
}

type statusUpdateInput struct {
	Status string `json:"status" binding:"required"`
}

type resolveInput struct {
	ResolutionNote string `json:"resolutionNote" binding:"required"`
}

// Page renders the assistance view. Signed-in users see their own
// request history under the form; anonymous visitors just get the form.
func (h *AssistanceHandler) Page(c *gin.Context) {
	logger := getLogger(c).With(zap.String("handler", "Assistance"))

	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusOK, page(c, gin.H{"requests": []models.AssistanceRequest{}}))
		return
	}

	requests, err := h.Assistance.GetUserRequests(c.Request.Context(), sess.AuthToken, sess.User.UserID)
	if err != nil {
		logger.Warn("failed to load assistance requests", zap.Error(err))
		c.JSON(http.StatusOK, page(c, gin.H{
			"requests": []models.AssistanceRequest{},
			"error":    err.Error(),
		}))
		return
	}
	c.JSON(http.StatusOK, page(c, gin.H{"requests": requests}))
}

// Create files a new help request for the signed-in user.
func (h *AssistanceHandler) Create(c *gin.Context) {
	logger := getLogger(c).With(zap.String("handler", "CreateAssistance"))
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to request assistance"})
		return
	}

	var input models.AssistanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Assistance.CreateRequest(c.Request.Context(), sess.AuthToken, input)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, err.Error(), "")
		return
	}

	logger.Info("assistance request filed", zap.Int64("requestId", created.RequestID))
	c.JSON(http.StatusCreated, gin.H{
		"request": created,
		"message": "Your request has been submitted. Our team will get back to you shortly.",
	})
}

// UpdateStatus moves a request through triage. Admin only.
func (h *AssistanceHandler) UpdateStatus(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	var input statusUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Assistance.UpdateStatus(c.Request.Context(), sess.AuthToken, id, input.Status); err != nil {
		utils.JSONError(c, http.StatusBadGateway, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// Resolve closes a request with a resolution note. Admin only.
func (h *AssistanceHandler) Resolve(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	var input resolveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Assistance.ResolveRequest(c.Request.Context(), sess.AuthToken, id, input.ResolutionNote); err != nil {
		utils.JSONError(c, http.StatusBadGateway, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request resolved"})
}
