package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tripway/handlers"
	"tripway/middleware"
	"tripway/models"
	"tripway/services/session"
)

// RegisterPublicRoutes registers the views anyone can open. The
// optional session middleware still resolves a token when one is sent
// so the shell renders the signed-in navigation.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions session.SessionService) {
	public := r.Group("")
	{
		public.Use(middleware.SessionMiddleware(sessions, false))
		public.GET("/", hb.LandingHandler)
		public.GET("/signin", hb.SignInView)
		public.GET("/register", hb.RegisterView)
		public.GET("/packages", hb.ListPackages)
		public.GET("/packages/:id", hb.PackageDetail)
		public.GET("/reviews", hb.ListReviews)
		public.GET("/packages/:id/reviews", hb.PackageReviews)
		public.GET("/assistance", hb.AssistancePage)
		public.POST("/assistance", hb.CreateAssistance)
	}
}

// RegisterAuthRoutes registers sign-in, registration and sign-out.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := r.Group("/auth")
	{
		auth.POST("/signin", hb.SignInHandler)
		auth.POST("/register", hb.SignUpHandler)
		auth.POST("/signout", hb.SignOutHandler)
	}
}

// RegisterBookingFlowRoutes sets up the step-by-step booking endpoints.
// Selection runs with optional auth so the flow itself can reject
// anonymous visitors with its sign-in message; every later step
// requires a session.
func RegisterBookingFlowRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions session.SessionService) {
	flow := r.Group("/flow")
	{
		flow.POST("/select", middleware.SessionMiddleware(sessions, false), hb.SelectPackage)

		steps := flow.Group("")
		steps.Use(middleware.SessionMiddleware(sessions, true))
		steps.GET("/:flowId", hb.FlowStatus)
		steps.PUT("/:flowId/dates", hb.ChooseDates)
		steps.POST("/:flowId/book", hb.CreateBooking)
		steps.POST("/:flowId/pay", hb.SubmitPayment)
		steps.POST("/:flowId/confirm", hb.ConfirmBooking)
		steps.DELETE("/:flowId", hb.CancelFlow)
	}
}

// RegisterUserDashboardRoutes sets up the customer's dashboard.
func RegisterUserDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions session.SessionService) {
	dash := r.Group("/user-dashboard")
	{
		dash.Use(middleware.SessionMiddleware(sessions, true))
		dash.Use(middleware.RequireRoles(models.RoleCustomer))
		dash.GET("", hb.UserDashboard)
		dash.PUT("/bookings/:id/cancel", hb.CancelBooking)
		dash.POST("/reviews", hb.SubmitReview)
	}
}

// RegisterAgentDashboardRoutes sets up the agent's management view.
// Agents still awaiting approval are bounced home.
func RegisterAgentDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions session.SessionService) {
	dash := r.Group("/agent-dashboard")
	{
		dash.Use(middleware.SessionMiddleware(sessions, true))
		dash.Use(middleware.RequireRoles(models.RoleAgent))
		dash.Use(middleware.RequireApprovedAgent())
		dash.GET("", hb.AgentDashboard)
		dash.GET("/packages", hb.AgentPackageStats)
		dash.POST("/packages", hb.CreatePackage)
		dash.PUT("/packages/:id", hb.UpdatePackage)
		dash.DELETE("/packages/:id", hb.DeletePackage)
		dash.POST("/reviews/:id/reply", hb.ReplyToReview)
	}
}

// RegisterAdminDashboardRoutes sets up the admin view and its actions.
func RegisterAdminDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions session.SessionService) {
	dash := r.Group("/admin-dashboard")
	{
		dash.Use(middleware.SessionMiddleware(sessions, true))
		dash.Use(middleware.RequireRoles(models.RoleAdmin))
		dash.GET("", hb.AdminDashboard)
		dash.GET("/approvals", hb.PendingApprovals)
		dash.PUT("/approvals/:id/approve", hb.ApproveAgent)
		dash.PUT("/approvals/:id/reject", hb.RejectAgent)
		dash.DELETE("/users/:id", hb.DeleteUserHandler)
		dash.PUT("/payments/:id/refund", hb.RefundPayment)
		dash.GET("/role-counts", hb.RoleCounts)
		dash.PUT("/assistance/:id/status", hb.UpdateAssistanceStatus)
		dash.PUT("/assistance/:id/resolve", hb.ResolveAssistance)
	}
}

// RegisterProfileRoutes sets up the profile view for any signed-in role.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions session.SessionService) {
	profile := r.Group("/profile")
	{
		profile.Use(middleware.SessionMiddleware(sessions, true))
		profile.GET("", hb.ShowProfile)
		profile.PUT("", hb.UpdateProfile)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm TripWay"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions session.SessionService) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterPublicRoutes(r, hb, sessions)
	RegisterAuthRoutes(r, hb)
	RegisterBookingFlowRoutes(r, hb, sessions)
	RegisterUserDashboardRoutes(r, hb, sessions)
	RegisterAgentDashboardRoutes(r, hb, sessions)
	RegisterAdminDashboardRoutes(r, hb, sessions)
	RegisterProfileRoutes(r, hb, sessions)
	RegisterHealthRoute(r)

	// Anything unrecognized goes back to the landing page.
	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})
}
