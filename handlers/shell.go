package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripway/middleware"
	"tripway/models"
)

// NavLink is one entry of the top navigation bar.
type NavLink struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Shell is the chrome around every page: brand, navigation and the
// signed-in identity, if any.
type Shell struct {
	Brand string     `json:"brand"`
	Links []NavLink  `json:"links"`
	User  *ShellUser `json:"user,omitempty"`
}

// ShellUser is the slice of the session surfaced to the navigation bar.
type ShellUser struct {
	Name            string `json:"name"`
	Role            string `json:"role"`
	PendingApproval bool   `json:"pendingApproval"`
}

const brandName = "TripWay"

// BuildShell assembles the navigation for the current session. Anonymous
// visitors see the public links plus sign-in and register. Signed-in users
// get their role's dashboard link instead, except agents still awaiting
// approval, who get no dashboard entry at all.
func BuildShell(sess *models.Session) Shell {
	links := []NavLink{
		{Label: "Home", Path: "/"},
		{Label: "Packages", Path: "/packages"},
		{Label: "Reviews", Path: "/reviews"},
		{Label: "Assistance", Path: "/assistance"},
	}

	if sess == nil || !sess.IsAuthenticated() {
		links = append(links,
			NavLink{Label: "Sign In", Path: "/signin"},
			NavLink{Label: "Register", Path: "/register"},
		)
		return Shell{Brand: brandName, Links: links}
	}

	switch {
	case sess.User.Role == models.RoleAdmin:
		links = append(links, NavLink{Label: "Admin Dashboard", Path: "/admin-dashboard"})
	case sess.User.Role == models.RoleAgent && !sess.User.IsPendingAgent():
		links = append(links, NavLink{Label: "Agent Dashboard", Path: "/agent-dashboard"})
	case sess.User.Role == models.RoleCustomer:
		links = append(links, NavLink{Label: "My Bookings", Path: "/user-dashboard"})
	}
	links = append(links, NavLink{Label: "Profile", Path: "/profile"})

	return Shell{
		Brand: brandName,
		Links: links,
		User: &ShellUser{
			Name:            sess.User.Name,
			Role:            sess.User.Role,
			PendingApproval: sess.User.IsPendingAgent(),
		},
	}
}

// page wraps a view payload with the shell for the current session.
func page(c *gin.Context, data gin.H) gin.H {
	sess, _ := middleware.CurrentSession(c)
	out := gin.H{"shell": BuildShell(sess)}
	for k, v := range data {
		out[k] = v
	}
	return out
}

// LandingHandler renders the home view.
func LandingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, page(c, gin.H{
		"headline": "Discover your next adventure",
		"tagline":  "Curated travel packages, trusted agents, bookings in minutes.",
	}))
}
