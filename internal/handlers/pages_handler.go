package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alamin-islam0/care-xyz-frontend/internal/backend"
	"github.com/alamin-islam0/care-xyz-frontend/internal/view"
)

// PagesHandler serves the marketing pages and the public service catalog.
type PagesHandler struct {
	api *backend.Client
	log zerolog.Logger
}

func NewPagesHandler(api *backend.Client, log zerolog.Logger) *PagesHandler {
	return &PagesHandler{api: api, log: log}
}

func (h *PagesHandler) Home(c *gin.Context) {
	data := gin.H{"Active": "home"}

	services, err := h.api.ListServices(c.Request.Context())
	if err != nil {
		// The hero still renders; only the services grid degrades.
		data["ServicesError"] = err.Error()
	} else {
		data["Services"] = services
	}

	view.Render(c, http.StatusOK, "home.html", data)
}

func (h *PagesHandler) About(c *gin.Context) {
	view.Render(c, http.StatusOK, "about.html", gin.H{"Active": "about"})
}

func (h *PagesHandler) Services(c *gin.Context) {
	data := gin.H{"Active": "services"}

	services, err := h.api.ListServices(c.Request.Context())
	if err != nil {
		data["Error"] = err.Error()
	} else {
		data["Services"] = services
	}

	view.Render(c, http.StatusOK, "services.html", data)
}

func (h *PagesHandler) ServiceDetail(c *gin.Context) {
	id := c.Param("serviceId")

	service, err := h.api.GetService(c.Request.Context(), id)
	if err != nil {
		if backend.IsNotFound(err) {
			h.NotFound(c)
			return
		}
		view.Render(c, http.StatusBadGateway, "service_detail.html", gin.H{
			"Active": "services",
			"Error":  err.Error(),
		})
		return
	}

	view.Render(c, http.StatusOK, "service_detail.html", gin.H{
		"Active":  "services",
		"Service": service,
	})
}

func (h *PagesHandler) Contact(c *gin.Context) {
	view.Render(c, http.StatusOK, "contact.html", gin.H{"Active": "contact"})
}

// ContactSubmit has no backend endpoint; the message is acknowledged and
// logged for the support team to pick up.
func (h *PagesHandler) ContactSubmit(c *gin.Context) {
	h.log.Info().
		Str("name", c.PostForm("name")).
		Str("email", c.PostForm("email")).
		Str("subject", c.PostForm("subject")).
		Msg("contact message received")

	view.SetFlash(c, "success", "Thanks for reaching out! We'll get back to you soon.")
	c.Redirect(http.StatusSeeOther, "/contact")
}

func (h *PagesHandler) NotFound(c *gin.Context) {
	view.Render(c, http.StatusNotFound, "not_found.html", gin.H{})
}
