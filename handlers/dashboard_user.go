package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripway/middleware"
	"tripway/models"
	"tripway/services/bookingsvc"
	"tripway/services/insurance"
	"tripway/services/paymentsvc"
	"tripway/services/review"
	"tripway/utils"
)

// UserDashboardHandler serves the customer's bookings view and the
// actions reachable from it.
type UserDashboardHandler struct {
	Bookings  bookingsvc.BookingService
	Payments  paymentsvc.PaymentService
	Insurance insurance.InsuranceService
	Reviews   review.ReviewService
}

// Dashboard loads the customer's bookings, payments and policies in
// parallel. Each block fails independently; whatever loaded still
// renders, with per-block errors surfaced alongside.
func (h *UserDashboardHandler) Dashboard(c *gin.Context) {
	logger := getLogger(c).With(zap.String("handler", "UserDashboard"))
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	ctx := c.Request.Context()
	token := sess.AuthToken
	userID := sess.User.UserID

	var (
		wg       sync.WaitGroup
		bookings []models.BookingWithDetails
		payments []models.Payment
		policies []models.InsurancePolicy
		mu       sync.Mutex
		loadErrs = map[string]string{}
	)
	fail := func(block string, err error) {
		mu.Lock()
		loadErrs[block] = err.Error()
		mu.Unlock()
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		if bookings, err = h.Bookings.GetUserBookingsWithDetails(ctx, token, userID); err != nil {
			fail("bookings", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if payments, err = h.Payments.GetPaymentsByUser(ctx, token, userID); err != nil {
			fail("payments", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if policies, err = h.Insurance.GetUserPolicies(ctx, token, userID); err != nil {
			fail("policies", err)
		}
	}()
	wg.Wait()

	if len(loadErrs) > 0 {
		logger.Warn("dashboard blocks failed", zap.Any("blocks", loadErrs))
	}

	c.JSON(http.StatusOK, page(c, gin.H{
		"bookings": bookings,
		"payments": payments,
		"policies": policies,
		"errors":   loadErrs,
	}))
}

// CancelBooking cancels one of the customer's bookings.
func (h *UserDashboardHandler) CancelBooking(c *gin.Context) {
	logger := getLogger(c).With(zap.String("handler", "CancelBooking"))
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	if err := h.Bookings.CancelBooking(c.Request.Context(), sess.AuthToken, id); err != nil {
		utils.JSONError(c, http.StatusBadGateway, err.Error(), "")
		return
	}

	logger.Info("booking cancelled", zap.Int64("bookingId", id))
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}

// SubmitReview posts a review for a package the customer booked.
func (h *UserDashboardHandler) SubmitReview(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Reviews.CreateReview(c.Request.Context(), sess.AuthToken, input)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": created, "message": "Review submitted. Thank you!"})
}
