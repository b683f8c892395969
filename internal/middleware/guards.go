package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// RequireAuth redirects unauthenticated visitors to the login page, carrying
// the originally requested path so login can send them back. Nothing of the
// guarded page is ever rendered to them.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			target := "/login?redirect=" + url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusSeeOther, target)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin additionally sends authenticated non-admins to the home page.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			target := "/login?redirect=" + url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusSeeOther, target)
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
