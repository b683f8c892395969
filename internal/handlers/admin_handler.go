package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alamin-islam0/care-xyz-frontend/internal/activity"
	"github.com/alamin-islam0/care-xyz-frontend/internal/backend"
	"github.com/alamin-islam0/care-xyz-frontend/internal/booking"
	"github.com/alamin-islam0/care-xyz-frontend/internal/middleware"
	"github.com/alamin-islam0/care-xyz-frontend/internal/models"
	"github.com/alamin-islam0/care-xyz-frontend/internal/view"
)

// AdminHandler serves the dashboard over the full booking set. Filtering and
// statistics run over the fetched snapshot in memory; the backend does no
// filtering for us.
type AdminHandler struct {
	api      *backend.Client
	activity *activity.Dispatcher
}

func NewAdminHandler(api *backend.Client, dispatcher *activity.Dispatcher) *AdminHandler {
	return &AdminHandler{api: api, activity: dispatcher}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	statusFilter := c.DefaultQuery("status", booking.FilterAll)
	search := c.Query("q")

	all, err := h.api.AllBookings(c.Request.Context(), middleware.CurrentToken(c))
	if err != nil {
		view.Render(c, http.StatusOK, "admin_dashboard.html", gin.H{
			"Error":        err.Error(),
			"StatusFilter": statusFilter,
			"Search":       search,
			"Filters":      filterOptions(),
		})
		return
	}

	filtered := booking.Filter(all, statusFilter, search)
	stats := booking.ComputeStats(all)

	view.Render(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"Rows":         view.NewBookingRows(filtered),
		"Stats":        stats,
		"Revenue":      view.FormatMoney(stats.Revenue),
		"StatusFilter": statusFilter,
		"Search":       search,
		"Filters":      filterOptions(),
		"Statuses":     models.AllStatuses,
	})
}

// StatusConfirm is the interactive confirmation step before a transition is
// requested from the backend.
func (h *AdminHandler) StatusConfirm(c *gin.Context) {
	id := c.Param("bookingId")
	target := models.Status(c.Query("to"))

	if !target.Valid() {
		view.SetFlash(c, "error", "Unknown status.")
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	b, err := h.api.GetBooking(c.Request.Context(), middleware.CurrentToken(c), id)
	if err != nil {
		view.SetFlash(c, "error", err.Error())
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	view.Render(c, http.StatusOK, "status_confirm.html", gin.H{
		"Booking": view.NewBookingRow(*b),
		"Target":  target,
	})
}

func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("bookingId")
	target := models.Status(c.PostForm("status"))

	if !target.Valid() {
		view.SetFlash(c, "error", "Unknown status.")
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	updated, err := h.api.UpdateBookingStatus(c.Request.Context(), middleware.CurrentToken(c), id, target)
	if err != nil {
		// Nothing was patched locally; the dashboard refetch shows the
		// unchanged record.
		view.SetFlash(c, "error", err.Error())
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	h.activity.Dispatch(activity.Event{
		Action:    "booking_status_updated",
		UserID:    middleware.CurrentUser(c).ID,
		BookingID: updated.ID,
		Detail:    string(updated.Status),
	})

	view.SetFlash(c, "success", "Booking status updated to "+string(updated.Status)+".")
	c.Redirect(http.StatusSeeOther, "/admin")
}

func filterOptions() []string {
	opts := []string{booking.FilterAll}
	for _, s := range models.AllStatuses {
		opts = append(opts, string(s))
	}
	return opts
}
