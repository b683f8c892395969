package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alamin-islam0/care-xyz-frontend/internal/activity"
	"github.com/alamin-islam0/care-xyz-frontend/internal/backend"
	"github.com/alamin-islam0/care-xyz-frontend/internal/booking"
	"github.com/alamin-islam0/care-xyz-frontend/internal/locations"
	"github.com/alamin-islam0/care-xyz-frontend/internal/middleware"
	"github.com/alamin-islam0/care-xyz-frontend/internal/models"
	"github.com/alamin-islam0/care-xyz-frontend/internal/timezone"
	"github.com/alamin-islam0/care-xyz-frontend/internal/view"
)

const startDateLayout = "2006-01-02"

// BookingHandler runs the guarded booking flow: load service, collect
// duration/location/date, derive the total, submit to the backend.
type BookingHandler struct {
	api      *backend.Client
	activity *activity.Dispatcher
}

func NewBookingHandler(api *backend.Client, dispatcher *activity.Dispatcher) *BookingHandler {
	return &BookingHandler{api: api, activity: dispatcher}
}

// bookingForm is the form state, preserved across validation failures and
// cascading select re-submits.
type bookingForm struct {
	DurationType  models.DurationType
	DurationValue int
	Selection     locations.Selection
	Address       string
	StartDate     string
}

func defaultBookingForm() bookingForm {
	return bookingForm{
		DurationType:  models.DurationHours,
		DurationValue: 1,
		Selection:     locations.DefaultSelection(),
	}
}

// readForm pulls form state from the request (query on GET re-submits, body
// on POST) and reconciles the location so it always names a valid path.
func readForm(get func(string) string) bookingForm {
	form := defaultBookingForm()

	if dt := models.DurationType(get("durationType")); dt.Valid() {
		form.DurationType = dt
	}
	if v, err := strconv.Atoi(get("durationValue")); err == nil {
		form.DurationValue = v
	}

	sel := form.Selection
	if v := get("division"); v != "" {
		sel.Division = v
	}
	if v := get("district"); v != "" {
		sel.District = v
	}
	if v := get("city"); v != "" {
		sel.City = v
	}
	if v := get("area"); v != "" {
		sel.Area = v
	}
	form.Selection = locations.Reconcile(sel)

	form.Address = strings.TrimSpace(get("address"))
	form.StartDate = get("startDate")
	return form
}

func (h *BookingHandler) render(c *gin.Context, status int, svc *models.Service, form bookingForm, errMsg string) {
	displayValue := form.DurationValue
	if displayValue < 1 {
		displayValue = 1
	}

	data := gin.H{
		"Service":   svc,
		"Form":      form,
		"Divisions": locations.Divisions(),
		"Districts": locations.Districts(form.Selection.Division),
		"Cities":    locations.Cities(form.Selection.Division, form.Selection.District),
		"Areas":     locations.Areas(form.Selection.Division, form.Selection.District, form.Selection.City),
		"Rate":      view.FormatMoney(svc.Rate(form.DurationType)),
		"Unit":      form.DurationType.Unit(),
		"TotalCost": view.FormatMoney(booking.TotalCost(svc, form.DurationType, displayValue)),
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}
	view.Render(c, status, "booking_form.html", data)
}

func (h *BookingHandler) FormPage(c *gin.Context) {
	svc, ok := h.loadService(c)
	if !ok {
		return
	}

	form := readForm(c.Query)
	if form.DurationValue < 1 {
		form.DurationValue = 1
	}
	h.render(c, http.StatusOK, svc, form, "")
}

func (h *BookingHandler) Create(c *gin.Context) {
	svc, ok := h.loadService(c)
	if !ok {
		return
	}

	form := readForm(c.PostForm)

	if form.DurationValue < 1 {
		h.render(c, http.StatusOK, svc, form, "Duration must be at least 1.")
		return
	}
	if form.Address == "" {
		h.render(c, http.StatusOK, svc, form, "Please provide your full address.")
		return
	}

	startDate := timezone.Now()
	if form.StartDate != "" {
		parsed, err := time.ParseInLocation(startDateLayout, form.StartDate, timezone.Location(timezone.DefaultTimezone))
		if err != nil {
			h.render(c, http.StatusOK, svc, form, "Please pick a valid start date.")
			return
		}
		startDate = parsed
	}

	created, err := h.api.CreateBooking(c.Request.Context(), middleware.CurrentToken(c), backend.CreateBookingRequest{
		ServiceID:     svc.ID,
		DurationType:  form.DurationType,
		DurationValue: form.DurationValue,
		Location: models.BookingLocation{
			Division: form.Selection.Division,
			District: form.Selection.District,
			City:     form.Selection.City,
			Area:     form.Selection.Area,
			Address:  form.Address,
		},
		StartDate: startDate,
	})
	if err != nil {
		// Entered data survives the failure; the user just resubmits.
		h.render(c, http.StatusOK, svc, form, err.Error())
		return
	}

	user := middleware.CurrentUser(c)
	h.activity.Dispatch(activity.Event{
		Action:    "booking_created",
		UserID:    user.ID,
		BookingID: created.ID,
		ServiceID: svc.ID,
	})

	view.SetFlash(c, "success", "Your booking has been placed.")
	c.Redirect(http.StatusSeeOther, "/my-bookings")
}

func (h *BookingHandler) loadService(c *gin.Context) (*models.Service, bool) {
	svc, err := h.api.GetService(c.Request.Context(), c.Param("serviceId"))
	if err != nil {
		status := http.StatusBadGateway
		if backend.IsNotFound(err) {
			status = http.StatusNotFound
		}
		view.Render(c, status, "booking_error.html", gin.H{"Error": err.Error()})
		return nil, false
	}
	return svc, true
}
