package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripway/handlers"
	"tripway/models"
	"tripway/services/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// noSessions resolves no token, so every request runs anonymous.
type noSessions struct{}

func (noSessions) Login(ctx context.Context, creds models.Credentials) session.AuthOutcome {
	return session.AuthOutcome{}
}

func (noSessions) Register(ctx context.Context, input models.RegistrationInput) session.AuthOutcome {
	return session.AuthOutcome{}
}

func (noSessions) Logout(ctx context.Context, sessionID string) {}

func (noSessions) Current(ctx context.Context, sessionID string) (*models.Session, error) {
	return nil, errors.New("no session")
}

func (noSessions) UpdateUser(ctx context.Context, sessionID string, updated models.User) (*models.Session, error) {
	return nil, errors.New("no session")
}

func (noSessions) RefreshUserData(ctx context.Context, sessionID string) (*models.Session, error) {
	return nil, errors.New("no session")
}

func (noSessions) InvalidateFromContext(ctx context.Context) {}

func stubBundle() *handlers.HandlerBundle {
	stub := func(c *gin.Context) { c.Status(http.StatusOK) }
	return &handlers.HandlerBundle{
		LandingHandler:   stub,
		ListPackages:     stub,
		PackageDetail:    stub,
		ListReviews:      stub,
		PackageReviews:   stub,
		AssistancePage:   stub,
		CreateAssistance: stub,

		SignInView:     stub,
		RegisterView:   stub,
		SignInHandler:  stub,
		SignUpHandler:  stub,
		SignOutHandler: stub,

		SelectPackage:  stub,
		ChooseDates:    stub,
		CreateBooking:  stub,
		SubmitPayment:  stub,
		ConfirmBooking: stub,
		CancelFlow:     stub,
		FlowStatus:     stub,

		UserDashboard: stub,
		CancelBooking: stub,
		SubmitReview:  stub,

		AgentDashboard:    stub,
		AgentPackageStats: stub,
		CreatePackage:     stub,
		UpdatePackage:     stub,
		DeletePackage:     stub,
		ReplyToReview:     stub,

		AdminDashboard:         stub,
		PendingApprovals:       stub,
		ApproveAgent:           stub,
		RejectAgent:            stub,
		DeleteUserHandler:      stub,
		RefundPayment:          stub,
		RoleCounts:             stub,
		UpdateAssistanceStatus: stub,
		ResolveAssistance:      stub,

		ShowProfile:   stub,
		UpdateProfile: stub,
	}
}

func testRouter() *gin.Engine {
	r := gin.New()
	RegisterRoutes(r, stubBundle(), noSessions{})
	return r
}

func TestSignInAndRegisterViewsAreRoutable(t *testing.T) {
	router := testRouter()

	for _, path := range []string{"/signin", "/register"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestUnknownRouteRedirectsHome(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestGuardedRouteRedirectsAnonymousToSignIn(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user-dashboard", nil))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/signin", w.Header().Get("Location"))
}
