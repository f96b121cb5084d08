package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripway/middleware"
	"tripway/models"
	"tripway/services/assistance"
	"tripway/services/bookingsvc"
	"tripway/services/insurance"
	"tripway/services/paymentsvc"
	"tripway/services/travelpkg"
	"tripway/services/user"
	"tripway/utils"
)

// AdminDashboardHandler serves the platform-wide admin view.
type AdminDashboardHandler struct {
	Users      user.UserService
	Packages   travelpkg.PackageService
	Bookings   bookingsvc.BookingService
	Payments   paymentsvc.PaymentService
	Insurance  insurance.InsuranceService
	Assistance assistance.AssistanceService
}

// adminOverview is everything the admin landing renders in one shot.
type adminOverview struct {
	Users      []models.User              `json:"users"`
	Packages   []models.TravelPackage     `json:"packages"`
	Bookings   []models.Booking           `json:"bookings"`
	Payments   []models.Payment           `json:"payments"`
	Policies   []models.InsurancePolicy   `json:"policies"`
	Assistance []models.AssistanceRequest `json:"assistance"`
	Errors     map[string]string          `json:"errors,omitempty"`
}

// Dashboard fans out to all six backend services concurrently and
// joins partial results: a failed block reports its error while the
// rest of the view still renders.
func (h *AdminDashboardHandler) Dashboard(c *gin.Context) {
	logger := getLogger(c).With(zap.String("handler", "AdminDashboard"))
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	ctx := c.Request.Context()
	token := sess.AuthToken

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		overview = adminOverview{Errors: map[string]string{}}
	)
	fail := func(block string, err error) {
		mu.Lock()
		overview.Errors[block] = err.Error()
		mu.Unlock()
	}

	wg.Add(6)
	go func() {
		defer wg.Done()
		var err error
		if overview.Users, err = h.Users.GetAllUsers(ctx, token); err != nil {
			fail("users", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if overview.Packages, err = h.Packages.GetAllPackages(ctx); err != nil {
			fail("packages", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if overview.Bookings, err = h.Bookings.GetAllBookings(ctx, token); err != nil {
			fail("bookings", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if overview.Payments, err = h.Payments.GetAllPayments(ctx, token); err != nil {
			fail("payments", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if overview.Policies, err = h.Insurance.GetAllPolicies(ctx, token); err != nil {
			fail("policies", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if overview.Assistance, err = h.Assistance.GetAllRequests(ctx, token); err != nil {
			fail("assistance", err)
		}
	}()
	wg.Wait()

	if len(overview.Errors) > 0 {
		logger.Warn("admin overview blocks failed", zap.Any("blocks", overview.Errors))
	} else {
		overview.Errors = nil
	}

	c.JSON(http.StatusOK, page(c, gin.H{"overview": overview}))
}

// PendingApprovals lists agent accounts waiting for a decision.
func (h *AdminDashboardHandler) PendingApprovals(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	pending, err := h.Users.GetPendingApprovals(c.Request.Context(), sess.AuthToken)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": pending})
}

// ApproveAgent approves a pending agent account.
func (h *AdminDashboardHandler) ApproveAgent(c *gin.Context) {
	h.decide(c, "approve")
}

// RejectAgent rejects a pending agent account.
func (h *AdminDashboardHandler) RejectAgent(c *gin.Context) {
	h.decide(c, "reject")
}

func (h *AdminDashboardHandler) decide(c *gin.Context, action string) {
	logger := getLogger(c).With(zap.String("handler", "AgentApproval"))
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	ctx := c.Request.Context()
	if action == "approve" {
		err = h.Users.ApproveUser(ctx, sess.AuthToken, id)
	} else {
		err = h.Users.RejectUser(ctx, sess.AuthToken, id)
	}
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, err.Error(), "")
		return
	}

	logger.Info("agent approval decided",
		zap.Int64("userId", id),
		zap.String("action", action))
	c.JSON(http.StatusOK, gin.H{"message": "Agent " + action + "d"})
}

// DeleteUser removes a user account.
func (h *AdminDashboardHandler) DeleteUser(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := h.Users.DeleteUser(c.Request.Context(), sess.AuthToken, id); err != nil {
		utils.JSONError(c, http.StatusBadGateway, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// RefundPayment refunds a payment from the admin payments view.
func (h *AdminDashboardHandler) RefundPayment(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}

	if err := h.Payments.RefundPayment(c.Request.Context(), sess.AuthToken, id); err != nil {
		utils.JSONError(c, http.StatusBadGateway, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment refunded"})
}

// RoleCounts returns how many users hold each role.
func (h *AdminDashboardHandler) RoleCounts(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	ctx := c.Request.Context()
	counts := gin.H{}
	for _, role := range []string{models.RoleCustomer, models.RoleAgent, models.RoleAdmin} {
		n, err := h.Users.CountByRole(ctx, sess.AuthToken, role)
		if err != nil {
			utils.JSONError(c, http.StatusBadGateway, err.Error(), "")
			return
		}
		counts[role] = n
	}
	c.JSON(http.StatusOK, gin.H{"counts": counts})
}
