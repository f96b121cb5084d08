// File: tripway/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all your endpoint handlers into one struct.
type HandlerBundle struct {
	// Public views
	LandingHandler   gin.HandlerFunc
	ListPackages     gin.HandlerFunc
	PackageDetail    gin.HandlerFunc
	ListReviews      gin.HandlerFunc
	PackageReviews   gin.HandlerFunc
	AssistancePage   gin.HandlerFunc
	CreateAssistance gin.HandlerFunc

	// Auth views and endpoints
	SignInView     gin.HandlerFunc
	RegisterView   gin.HandlerFunc
	SignInHandler  gin.HandlerFunc
	SignUpHandler  gin.HandlerFunc
	SignOutHandler gin.HandlerFunc

	// Booking flow endpoints
	SelectPackage  gin.HandlerFunc
	ChooseDates    gin.HandlerFunc
	CreateBooking  gin.HandlerFunc
	SubmitPayment  gin.HandlerFunc
	ConfirmBooking gin.HandlerFunc
	CancelFlow     gin.HandlerFunc
	FlowStatus     gin.HandlerFunc

	// Customer dashboard
	UserDashboard gin.HandlerFunc
	CancelBooking gin.HandlerFunc
	SubmitReview  gin.HandlerFunc

	// Agent dashboard
	AgentDashboard    gin.HandlerFunc
	AgentPackageStats gin.HandlerFunc
	CreatePackage     gin.HandlerFunc
	UpdatePackage     gin.HandlerFunc
	DeletePackage     gin.HandlerFunc
	ReplyToReview     gin.HandlerFunc

	// Admin dashboard
	AdminDashboard         gin.HandlerFunc
	PendingApprovals       gin.HandlerFunc
	ApproveAgent           gin.HandlerFunc
	RejectAgent            gin.HandlerFunc
	DeleteUserHandler      gin.HandlerFunc
	RefundPayment          gin.HandlerFunc
	RoleCounts             gin.HandlerFunc
	UpdateAssistanceStatus gin.HandlerFunc
	ResolveAssistance      gin.HandlerFunc

	// Profile
	ShowProfile   gin.HandlerFunc
	UpdateProfile gin.HandlerFunc
}
