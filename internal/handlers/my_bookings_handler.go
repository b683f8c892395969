package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alamin-islam0/care-xyz-frontend/internal/activity"
	"github.com/alamin-islam0/care-xyz-frontend/internal/backend"
	"github.com/alamin-islam0/care-xyz-frontend/internal/booking"
	"github.com/alamin-islam0/care-xyz-frontend/internal/middleware"
	"github.com/alamin-islam0/care-xyz-frontend/internal/view"
)

// MyBookingsHandler serves the caller's own bookings and the two-step
// cancellation flow (confirm page, then the actual cancel request).
type MyBookingsHandler struct {
	api      *backend.Client
	activity *activity.Dispatcher
}

func NewMyBookingsHandler(api *backend.Client, dispatcher *activity.Dispatcher) *MyBookingsHandler {
	return &MyBookingsHandler{api: api, activity: dispatcher}
}

func (h *MyBookingsHandler) List(c *gin.Context) {
	bookings, err := h.api.MyBookings(c.Request.Context(), middleware.CurrentToken(c))
	if err != nil {
		view.Render(c, http.StatusOK, "my_bookings.html", gin.H{"Error": err.Error()})
		return
	}

	view.Render(c, http.StatusOK, "my_bookings.html", gin.H{
		"Rows": view.NewBookingRows(bookings),
	})
}

func (h *MyBookingsHandler) Detail(c *gin.Context) {
	b, err := h.api.GetBooking(c.Request.Context(), middleware.CurrentToken(c), c.Param("bookingId"))
	if err != nil {
		status := http.StatusOK
		if backend.IsNotFound(err) {
			status = http.StatusNotFound
		}
		view.Render(c, status, "booking_detail.html", gin.H{"Error": err.Error()})
		return
	}

	view.Render(c, http.StatusOK, "booking_detail.html", gin.H{
		"Booking": view.NewBookingDetail(*b),
	})
}

// CancelConfirm asks before mutating; the cancel itself only happens on the
// POST below.
func (h *MyBookingsHandler) CancelConfirm(c *gin.Context) {
	b, err := h.api.GetBooking(c.Request.Context(), middleware.CurrentToken(c), c.Param("bookingId"))
	if err != nil {
		view.SetFlash(c, "error", err.Error())
		c.Redirect(http.StatusSeeOther, "/my-bookings")
		return
	}

	if err := booking.CanCancel(b.Status); err != nil {
		view.SetFlash(c, "error", "This booking can no longer be cancelled.")
		c.Redirect(http.StatusSeeOther, "/my-bookings")
		return
	}

	view.Render(c, http.StatusOK, "cancel_confirm.html", gin.H{
		"Booking": view.NewBookingRow(*b),
	})
}

func (h *MyBookingsHandler) Cancel(c *gin.Context) {
	id := c.Param("bookingId")

	cancelled, err := h.api.CancelBooking(c.Request.Context(), middleware.CurrentToken(c), id)
	if err != nil {
		view.SetFlash(c, "error", err.Error())
		c.Redirect(http.StatusSeeOther, "/my-bookings")
		return
	}

	h.activity.Dispatch(activity.Event{
		Action:    "booking_cancelled",
		UserID:    middleware.CurrentUser(c).ID,
		BookingID: cancelled.ID,
	})

	view.SetFlash(c, "success", "Your booking has been cancelled.")
	c.Redirect(http.StatusSeeOther, "/my-bookings")
}
