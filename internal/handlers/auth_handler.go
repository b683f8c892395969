package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alamin-islam0/care-xyz-frontend/internal/activity"
	"github.com/alamin-islam0/care-xyz-frontend/internal/backend"
	"github.com/alamin-islam0/care-xyz-frontend/internal/middleware"
	"github.com/alamin-islam0/care-xyz-frontend/internal/session"
	"github.com/alamin-islam0/care-xyz-frontend/internal/validators"
	"github.com/alamin-islam0/care-xyz-frontend/internal/view"
)

type AuthHandler struct {
	api            *backend.Client
	sessions       *session.Manager
	activity       *activity.Dispatcher
	googleClientID string
}

func NewAuthHandler(api *backend.Client, sessions *session.Manager, dispatcher *activity.Dispatcher, googleClientID string) *AuthHandler {
	return &AuthHandler{
		api:            api,
		sessions:       sessions,
		activity:       dispatcher,
		googleClientID: googleClientID,
	}
}

// redirectTarget keeps post-login navigation on-site: only local paths are
// honored, anything else falls back to home.
func redirectTarget(c *gin.Context) string {
	target := c.Query("redirect")
	if target == "" {
		target = c.PostForm("redirect")
	}
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/"
	}
	return target
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	if middleware.CurrentUser(c) != nil {
		c.Redirect(http.StatusSeeOther, redirectTarget(c))
		return
	}

	view.Render(c, http.StatusOK, "login.html", gin.H{
		"Email":          "",
		"Redirect":       redirectTarget(c),
		"GoogleClientID": h.googleClientID,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	password := c.PostForm("password")

	renderError := func(message string) {
		view.Render(c, http.StatusOK, "login.html", gin.H{
			"Error":          message,
			"Email":          email,
			"Redirect":       redirectTarget(c),
			"GoogleClientID": h.googleClientID,
		})
	}

	if email == "" || password == "" {
		renderError("Email and password are required.")
		return
	}

	auth, err := h.api.Login(c.Request.Context(), backend.LoginRequest{Email: email, Password: password})
	if err != nil {
		renderError(err.Error())
		return
	}

	h.sessions.Login(c, auth.Token)
	h.activity.Dispatch(activity.Event{Action: "user_logged_in", UserID: auth.User.ID})
	c.Redirect(http.StatusSeeOther, redirectTarget(c))
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	if middleware.CurrentUser(c) != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	view.Render(c, http.StatusOK, "register.html", gin.H{
		"Name":     "",
		"Email":    "",
		"Contact":  "",
		"NidNo":    "",
		"Redirect": redirectTarget(c),
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	form := gin.H{
		"Name":     strings.TrimSpace(c.PostForm("name")),
		"Email":    strings.ToLower(strings.TrimSpace(c.PostForm("email"))),
		"Contact":  strings.TrimSpace(c.PostForm("contact")),
		"NidNo":    strings.TrimSpace(c.PostForm("nidNo")),
		"Redirect": redirectTarget(c),
	}
	name := form["Name"].(string)
	email := form["Email"].(string)
	contact := form["Contact"].(string)
	password := c.PostForm("password")

	renderError := func(message string) {
		form["Error"] = message
		view.Render(c, http.StatusOK, "register.html", form)
	}

	switch {
	case name == "" || email == "" || contact == "" || password == "":
		renderError("Name, email, contact and password are required.")
		return
	case !validators.IsEmailValid(email):
		renderError("Please enter a valid email address.")
		return
	case !validators.IsEmailDomainValid(email):
		renderError("The email domain does not look valid.")
		return
	case len(password) < 6:
		renderError("Password must be at least 6 characters.")
		return
	}

	auth, err := h.api.Register(c.Request.Context(), backend.RegisterRequest{
		Name:     name,
		Email:    email,
		Contact:  contact,
		Password: password,
		NidNo:    form["NidNo"].(string),
	})
	if err != nil {
		renderError(err.Error())
		return
	}

	h.sessions.Login(c, auth.Token)
	h.activity.Dispatch(activity.Event{Action: "user_registered", UserID: auth.User.ID})
	c.Redirect(http.StatusSeeOther, redirectTarget(c))
}

// GoogleLogin receives the credential the Google button posts back and
// exchanges it with the backend for a first-party session.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	credential := c.PostForm("credential")
	if credential == "" {
		view.SetFlash(c, "error", "Google sign-in failed. Please try again.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	auth, err := h.api.GoogleLogin(c.Request.Context(), credential)
	if err != nil {
		view.SetFlash(c, "error", err.Error())
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	h.sessions.Login(c, auth.Token)
	h.activity.Dispatch(activity.Event{Action: "user_logged_in", UserID: auth.User.ID, Detail: "google"})
	c.Redirect(http.StatusSeeOther, redirectTarget(c))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	user := middleware.CurrentUser(c)
	h.sessions.Logout(c, middleware.CurrentToken(c))
	if user != nil {
		h.activity.Dispatch(activity.Event{Action: "user_logged_out", UserID: user.ID})
	}
	c.Redirect(http.StatusSeeOther, "/")
}
