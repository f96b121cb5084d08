package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripway/models"
)

func authViewRouter(sess *models.Session) *gin.Engine {
	h := &AuthHandler{}
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if sess != nil {
			c.Set("session", sess)
		}
		c.Next()
	})
	router.GET("/signin", h.SignInView)
	router.GET("/register", h.RegisterView)
	return router
}

func TestAuthViewsRenderForAnonymousVisitors(t *testing.T) {
	router := authViewRouter(nil)

	for path, form := range map[string]string{
		"/signin":   `"form":"signin"`,
		"/register": `"form":"register"`,
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), form)
		assert.Contains(t, w.Body.String(), `"shell"`)
	}
}

func TestAuthViewsRedirectSignedInVisitors(t *testing.T) {
	sess := &models.Session{
		SessionID: "s-1",
		User:      models.User{UserID: 5, Name: "Ann Bay", Role: models.RoleCustomer},
		AuthToken: "gw-token",
	}
	router := authViewRouter(sess)

	for _, path := range []string{"/signin", "/register"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/user-dashboard", w.Header().Get("Location"))
	}
}
