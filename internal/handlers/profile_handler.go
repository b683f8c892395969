package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alamin-islam0/care-xyz-frontend/internal/middleware"
	"github.com/alamin-islam0/care-xyz-frontend/internal/view"
)

type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

func (h *ProfileHandler) Show(c *gin.Context) {
	view.Render(c, http.StatusOK, "profile.html", gin.H{
		"Profile": middleware.CurrentUser(c),
	})
}
