package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTravelPackageUnmarshalModernShape(t *testing.T) {
	raw := `{
		"packageId": 12,
		"title": "Alpine Trek",
		"durationDays": 7,
		"price": 899.50,
		"includedServices": ["Hotel", "Guide"],
		"imageUrl": "https://cdn.example.com/alpine.jpg",
		"agentId": 3
	}`

	var pkg TravelPackage
	require.NoError(t, json.Unmarshal([]byte(raw), &pkg))
	assert.Equal(t, int64(12), pkg.PackageID)
	assert.Equal(t, 7, pkg.DurationDays)
	assert.Equal(t, 899.50, pkg.Price)
	assert.Equal(t, []string{"Hotel", "Guide"}, pkg.IncludedServices)
	assert.Equal(t, "https://cdn.example.com/alpine.jpg", pkg.ImageURL)
	assert.Equal(t, int64(3), pkg.AgentID)
}

func TestTravelPackageUnmarshalLegacyShape(t *testing.T) {
	raw := `{
		"id": "12",
		"title": "Alpine Trek",
		"duration": "7 Days",
		"price": "899.50",
		"includedServices": "Hotel, Guide , Meals",
		"image": "alpine.jpg",
		"agentId": "3"
	}`

	var pkg TravelPackage
	require.NoError(t, json.Unmarshal([]byte(raw), &pkg))
	assert.Equal(t, int64(12), pkg.PackageID)
	assert.Equal(t, 7, pkg.DurationDays)
	assert.Equal(t, 899.50, pkg.Price)
	assert.Equal(t, []string{"Hotel", "Guide", "Meals"}, pkg.IncludedServices)
	assert.Equal(t, "alpine.jpg", pkg.ImageURL)
	assert.Equal(t, int64(3), pkg.AgentID)
}

func TestUserUnmarshalApprovalAliases(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"modern field", `{"userId": 1, "role": "agent", "approvalStatus": "pending"}`, "pending"},
		{"legacy field", `{"id": 1, "role": "agent", "approval": "approved"}`, "approved"},
		{"modern wins over legacy", `{"userId": 1, "role": "agent", "approvalStatus": "rejected", "approval": "approved"}`, "rejected"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u User
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &u))
			assert.Equal(t, int64(1), u.UserID)
			assert.Equal(t, tt.want, u.ApprovalStatus)
		})
	}
}

func TestUserIsPendingAgent(t *testing.T) {
	assert.True(t, User{Role: RoleAgent, ApprovalStatus: ApprovalPending}.IsPendingAgent())
	assert.False(t, User{Role: RoleAgent, ApprovalStatus: ApprovalApproved}.IsPendingAgent())
	assert.False(t, User{Role: RoleCustomer, ApprovalStatus: ApprovalPending}.IsPendingAgent())
}

func TestBookingUnmarshalIDAliases(t *testing.T) {
	var fromModern, fromLegacy Booking
	require.NoError(t, json.Unmarshal([]byte(`{"bookingId": 44, "userId": 2, "packageId": 12, "status": "pending"}`), &fromModern))
	require.NoError(t, json.Unmarshal([]byte(`{"id": "44", "userId": "2", "packageId": "12", "status": "pending"}`), &fromLegacy))
	assert.Equal(t, fromModern, fromLegacy)
	assert.Equal(t, int64(44), fromModern.BookingID)
}

func TestPaymentUnmarshalMethodAliases(t *testing.T) {
	var p Payment
	raw := `{"id": "9", "bookingId": 44, "amount": "1299.99", "method": "CREDIT_CARD", "status": "completed"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, int64(9), p.PaymentID)
	assert.Equal(t, 1299.99, p.Amount)
	assert.Equal(t, "CREDIT_CARD", p.PaymentMethod)
}

func TestCardDetailsLastFour(t *testing.T) {
	assert.Equal(t, "1111", CardDetails{Number: "4111 1111 1111 1111"}.LastFour())
	assert.Equal(t, "", CardDetails{Number: "123"}.LastFour())
}

func TestWorkflowSessionTotal(t *testing.T) {
	flow := WorkflowSession{Package: TravelPackage{Price: 1299.99}}
	assert.Equal(t, 1299.99, flow.Total())

	flow.Insurance = &InsuranceOffer{Price: 79.99}
	assert.InDelta(t, 1379.98, flow.Total(), 0.0001)
}
