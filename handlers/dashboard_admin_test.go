package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripway/gateway"
	"tripway/models"
	"tripway/services/assistance"
	"tripway/services/bookingsvc"
	"tripway/services/insurance"
	"tripway/services/paymentsvc"
	"tripway/services/travelpkg"
	"tripway/services/user"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// scriptedGateway maps endpoints to canned results so the real service
// clients run end to end without a network.
type scriptedGateway struct {
	mu      sync.Mutex
	results map[string]gateway.Result
}

func (g *scriptedGateway) Do(ctx context.Context, endpoint string, opts gateway.Options) gateway.Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	if res, ok := g.results[endpoint]; ok {
		return res
	}
	return gateway.Failure(gateway.MsgGenericFailed, http.StatusInternalServerError)
}

func ok(payload string) gateway.Result {
	return gateway.Result{Success: true, Data: json.RawMessage(payload), Status: http.StatusOK}
}

func adminSession() *models.Session {
	return &models.Session{
		SessionID: "s-admin",
		User:      models.User{UserID: 1, Name: "Root", Role: models.RoleAdmin},
		AuthToken: "gw-token",
	}
}

func adminRouter(gw *scriptedGateway) *gin.Engine {
	h := &AdminDashboardHandler{
		Users:      &user.DefaultUserService{Gateway: gw},
		Packages:   &travelpkg.DefaultPackageService{Gateway: gw},
		Bookings:   &bookingsvc.DefaultBookingService{Gateway: gw},
		Payments:   &paymentsvc.DefaultPaymentService{Gateway: gw},
		Insurance:  &insurance.DefaultInsuranceService{Gateway: gw},
		Assistance: &assistance.DefaultAssistanceService{Gateway: gw},
	}
	router := gin.New()
	router.GET("/admin-dashboard", func(c *gin.Context) {
		c.Set("session", adminSession())
		c.Next()
	}, h.Dashboard)
	return router
}

func TestAdminDashboardJoinsAllBlocks(t *testing.T) {
	gw := &scriptedGateway{results: map[string]gateway.Result{
		"/api/users":      ok(`[{"userId": 5, "name": "Ann Bay", "role": "customer"}]`),
		"/api/packages":   ok(`[{"packageId": 12, "title": "Alpine Trek", "durationDays": 7, "price": 899.5}]`),
		"/api/bookings":   ok(`[{"bookingId": 44, "userId": 5, "packageId": 12, "status": "confirmed"}]`),
		"/api/payments":   ok(`[{"paymentId": 9, "bookingId": 44, "amount": 899.5, "status": "completed"}]`),
		"/api/insurance":  ok(`[{"insuranceId": 7, "userId": 5, "bookingId": 44, "premium": 79.99, "status": "active"}]`),
		"/api/assistance": ok(`[{"requestId": 3, "status": "pending"}]`),
	}}
	router := adminRouter(gw)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-dashboard", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Overview adminOverview `json:"overview"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Overview.Users, 1)
	assert.Len(t, body.Overview.Packages, 1)
	assert.Len(t, body.Overview.Bookings, 1)
	assert.Len(t, body.Overview.Payments, 1)
	assert.Len(t, body.Overview.Policies, 1)
	assert.Len(t, body.Overview.Assistance, 1)
	assert.Empty(t, body.Overview.Errors)
	assert.Equal(t, "Alpine Trek", body.Overview.Packages[0].Title)
}

func TestAdminDashboardPartialFailureStillRenders(t *testing.T) {
	gw := &scriptedGateway{results: map[string]gateway.Result{
		"/api/users":      ok(`[{"userId": 5, "name": "Ann Bay", "role": "customer"}]`),
		"/api/packages":   ok(`[{"packageId": 12, "title": "Alpine Trek"}]`),
		"/api/bookings":   gateway.Failure("Request timed out. Please try again.", 0),
		"/api/payments":   ok(`[]`),
		"/api/insurance":  ok(`[]`),
		"/api/assistance": ok(`[]`),
	}}
	router := adminRouter(gw)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-dashboard", nil))
	require.Equal(t, http.StatusOK, w.Code, "one failed block must not take the view down")

	var body struct {
		Overview adminOverview `json:"overview"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Overview.Users, 1)
	assert.Len(t, body.Overview.Packages, 1)
	assert.Empty(t, body.Overview.Bookings)
	require.Contains(t, body.Overview.Errors, "bookings")
	assert.True(t, strings.Contains(body.Overview.Errors["bookings"], "timed out"))
}
