package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripway/middleware"
	"tripway/models"
	"tripway/services/workflow"
	"tripway/utils"
)

// BookingFlowHandler exposes the step-by-step booking flow. Every step
// past selection is addressed by the flow ID the selection returned,
// and each response carries the flow so the client always renders from
// server-held state.
type BookingFlowHandler struct {
	Flow workflow.WorkflowService
}

type selectPackageInput struct {
	PackageID int64 `json:"packageId" binding:"required"`
}

type chooseDatesInput struct {
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate"`
	InsuranceID int64  `json:"insuranceId"`
}

// Select opens a flow for the chosen package. Anonymous visitors are
// bounced to sign-in with the message the flow uses everywhere.
func (h *BookingFlowHandler) Select(c *gin.Context) {
	logger := getLogger(c).With(zap.String("handler", "SelectPackage"))

	var input selectPackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, _ := middleware.CurrentSession(c)
	flow, err := h.Flow.SelectPackage(c.Request.Context(), sess, input.PackageID)
	if err != nil {
		if errors.Is(err, workflow.ErrSignInRequired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "redirect": "/signin"})
			return
		}
		utils.JSONError(c, http.StatusBadGateway, err.Error(), "")
		return
	}

	logger.Info("booking flow opened",
		zap.String("flowId", flow.FlowID),
		zap.Int64("packageId", input.PackageID))
	c.JSON(http.StatusCreated, gin.H{"flow": flow})
}

// Dates records the travel window and insurance pick.
func (h *BookingFlowHandler) Dates(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var input chooseDatesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	flow, err := h.Flow.ChooseDates(c.Request.Context(), sess, c.Param("flowId"),
		input.StartDate, input.EndDate, input.InsuranceID)
	if err != nil {
		c.JSON(flowErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"flow": flow, "total": flow.Total()})
}

// Book creates the pending booking for the flow.
func (h *BookingFlowHandler) Book(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	flow, err := h.Flow.CreateBooking(c.Request.Context(), sess, c.Param("flowId"))
	if err != nil {
		c.JSON(flowErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"flow": flow, "total": flow.Total()})
}

// Pay validates the card, charges the flow's total and, on success,
// confirms the booking in the same request. A declined payment leaves
// the flow retryable at the payment step.
func (h *BookingFlowHandler) Pay(c *gin.Context) {
	logger := getLogger(c).With(zap.String("handler", "SubmitPayment"))
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var card models.CardDetails
	if err := c.ShouldBindJSON(&card); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	flow, err := h.Flow.SubmitPayment(c.Request.Context(), sess, c.Param("flowId"), card)
	if err != nil {
		c.JSON(flowErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	logger.Info("payment accepted",
		zap.String("flowId", flow.FlowID),
		zap.String("state", flow.State))
	c.JSON(http.StatusOK, confirmationView(flow))
}

// Confirm retries confirmation for a paid flow whose confirm call
// failed earlier.
func (h *BookingFlowHandler) Confirm(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	flow, err := h.Flow.ConfirmBooking(c.Request.Context(), sess, c.Param("flowId"))
	if err != nil {
		c.JSON(flowErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, confirmationView(flow))
}

// Cancel drops the flow. Safe at any pre-confirmation step.
func (h *BookingFlowHandler) Cancel(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := h.Flow.Cancel(c.Request.Context(), sess, c.Param("flowId")); err != nil {
		c.JSON(flowErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled", "redirect": "/packages"})
}

// Status returns the current flow state, for a client resuming a page.
func (h *BookingFlowHandler) Status(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	flow, err := h.Flow.Get(c.Request.Context(), sess, c.Param("flowId"))
	if err != nil {
		c.JSON(flowErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"flow": flow, "total": flow.Total()})
}

func confirmationView(flow *models.WorkflowSession) gin.H {
	out := gin.H{"flow": flow, "total": flow.Total()}
	if flow.State == models.FlowConfirmed {
		out["message"] = "Booking confirmed! Thank you for your purchase."
		out["redirect"] = "/user-dashboard"
	}
	return out
}

// flowErrorStatus maps flow errors onto HTTP statuses: a missing or
// expired flow is 404, everything else is the client's fault or the
// backend's word, reported as 400.
func flowErrorStatus(err error) int {
	if errors.Is(err, workflow.ErrFlowNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
