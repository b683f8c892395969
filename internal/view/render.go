// Package view renders pages and shapes bookings into display rows, so
// templates stay free of formatting logic.
package view

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/alamin-islam0/care-xyz-frontend/internal/middleware"
)

// Render writes an HTML page, merging the session user and any pending
// flash into the template data.
func Render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if _, ok := data["User"]; !ok {
		data["User"] = middleware.CurrentUser(c)
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = TakeFlash(c)
	}
	if _, ok := data["Active"]; !ok {
		data["Active"] = ""
	}

	c.HTML(status, page, data)
}

// FormatMoney renders an amount the way the site always has: dollar sign,
// no cents for whole amounts.
func FormatMoney(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("$%.0f", amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}
