// File: tripway/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tripway/config"
	"tripway/gateway"
	"tripway/handlers"
	"tripway/routes"
	"tripway/services/assistance"
	"tripway/services/bookingsvc"
	"tripway/services/insurance"
	"tripway/services/paymentsvc"
	"tripway/services/review"
	"tripway/services/session"
	"tripway/services/travelpkg"
	"tripway/services/user"
	"tripway/services/workflow"
	"tripway/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	utils.InitWorkflowCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(func(c *gin.Context) {
		c.Set("logger", logger)
		c.Next()
	})

	// Backend gateway client shared by every domain service.
	gw := gateway.NewClient(config.AppConfig.GatewayBaseURL, config.GatewayTimeout(), logger)

	// Domain service clients.
	userService := &user.DefaultUserService{Gateway: gw}
	packageService := &travelpkg.DefaultPackageService{Gateway: gw}
	bookingService := &bookingsvc.DefaultBookingService{Gateway: gw}
	paymentService := &paymentsvc.DefaultPaymentService{Gateway: gw}
	reviewService := &review.DefaultReviewService{Gateway: gw}
	insuranceService := &insurance.DefaultInsuranceService{Gateway: gw}
	assistanceService := &assistance.DefaultAssistanceService{Gateway: gw}

	sessionService := &session.DefaultSessionService{
		Users:  userService,
		Store:  &session.RedisStore{Client: utils.GetSessionCacheClient(), TTL: config.SessionTTL()},
		TTL:    config.SessionTTL(),
		Logger: logger,
	}
	// A 401 from the backend means the gateway token died; tear the
	// session down so the next request renders signed-out.
	gw.SetUnauthorizedHook(sessionService.InvalidateFromContext)

	workflowService := &workflow.DefaultWorkflowService{
		Packages:  packageService,
		Bookings:  bookingService,
		Payments:  paymentService,
		Insurance: insuranceService,
		Store:     &workflow.RedisStore{Client: utils.GetWorkflowCacheClient(), TTL: config.WorkflowTTL()},
		Logger:    logger,
	}

	// View-layer handlers.
	authHandler := &handlers.AuthHandler{Sessions: sessionService}
	packagesHandler := &handlers.PackagesHandler{Packages: packageService, Insurance: insuranceService}
	flowHandler := &handlers.BookingFlowHandler{Flow: workflowService}
	userDash := &handlers.UserDashboardHandler{
		Bookings:  bookingService,
		Payments:  paymentService,
		Insurance: insuranceService,
		Reviews:   reviewService,
	}
	agentDash := &handlers.AgentDashboardHandler{
		Packages: packageService,
		Bookings: bookingService,
		Reviews:  reviewService,
	}
	adminDash := &handlers.AdminDashboardHandler{
		Users:      userService,
		Packages:   packageService,
		Bookings:   bookingService,
		Payments:   paymentService,
		Insurance:  insuranceService,
		Assistance: assistanceService,
	}
	profileHandler := &handlers.ProfileHandler{Users: userService, Sessions: sessionService}
	reviewsHandler := &handlers.ReviewsHandler{Reviews: reviewService}
	assistanceHandler := &handlers.AssistanceHandler{Assistance: assistanceService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Public views.
		LandingHandler:   handlers.LandingHandler,
		ListPackages:     packagesHandler.List,
		PackageDetail:    packagesHandler.Detail,
		ListReviews:      reviewsHandler.List,
		PackageReviews:   reviewsHandler.ForPackage,
		AssistancePage:   assistanceHandler.Page,
		CreateAssistance: assistanceHandler.Create,

		// Auth views and endpoints.
		SignInView:     authHandler.SignInView,
		RegisterView:   authHandler.RegisterView,
		SignInHandler:  authHandler.SignIn,
		SignUpHandler:  authHandler.SignUp,
		SignOutHandler: authHandler.SignOut,

		// Booking flow endpoints.
		SelectPackage:  flowHandler.Select,
		ChooseDates:    flowHandler.Dates,
		CreateBooking:  flowHandler.Book,
		SubmitPayment:  flowHandler.Pay,
		ConfirmBooking: flowHandler.Confirm,
		CancelFlow:     flowHandler.Cancel,
		FlowStatus:     flowHandler.Status,

		// Customer dashboard.
		UserDashboard: userDash.Dashboard,
		CancelBooking: userDash.CancelBooking,
		SubmitReview:  userDash.SubmitReview,

		// Agent dashboard.
		AgentDashboard:    agentDash.Dashboard,
		AgentPackageStats: agentDash.PackageStats,
		CreatePackage:     packagesHandler.Create,
		UpdatePackage:     packagesHandler.Update,
		DeletePackage:     packagesHandler.Delete,
		ReplyToReview:     agentDash.ReplyToReview,

		// Admin dashboard.
		AdminDashboard:         adminDash.Dashboard,
		PendingApprovals:       adminDash.PendingApprovals,
		ApproveAgent:           adminDash.ApproveAgent,
		RejectAgent:            adminDash.RejectAgent,
		DeleteUserHandler:      adminDash.DeleteUser,
		RefundPayment:          adminDash.RefundPayment,
		RoleCounts:             adminDash.RoleCounts,
		UpdateAssistanceStatus: assistanceHandler.UpdateStatus,
		ResolveAssistance:      assistanceHandler.Resolve,

		// Profile.
		ShowProfile:   profileHandler.Show,
		UpdateProfile: profileHandler.Update,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, sessionService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
