package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alamin-islam0/care-xyz-frontend/internal/backend"
	"github.com/alamin-islam0/care-xyz-frontend/internal/models"
)

const adminBookingsJSON = `{"bookings": [
	{
		"_id": "abc123",
		"user": {"_id": "u1", "name": "Jane Doe", "email": "jane@example.com"},
		"service": {"_id": "s1", "name": "Baby Care"},
		"durationType": "hours",
		"durationValue": 4,
		"location": {"city": "Dhaka North", "area": "Uttara"},
		"totalCost": 50,
		"status": "pending"
	},
	{
		"_id": "xyz789",
		"user": {"_id": "u2", "name": "Bob Rahman", "email": "bob@example.com"},
		"service": {"_id": "s2", "name": "Elderly Care"},
		"durationType": "days",
		"durationValue": 2,
		"location": {"city": "Tongi", "area": "Station Road"},
		"totalCost": 30,
		"status": "confirmed"
	}
]}`

func adminRouter(t *testing.T, api *backend.Client) *gin.Engine {
	t.Helper()
	r := newEngine()
	r.Use(asUser(&models.User{ID: "a1", Name: "Admin", Role: models.RoleAdmin}))

	h := NewAdminHandler(api, newDispatcher(t))
	r.GET("/admin", h.Dashboard)
	r.GET("/admin/bookings/:bookingId/status", h.StatusConfirm)
	r.POST("/admin/bookings/:bookingId/status", h.UpdateStatus)
	return r
}

func TestDashboardAppliesStatusAndSearchFilters(t *testing.T) {
	api := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/all", r.URL.Path)
		w.Write([]byte(adminBookingsJSON))
	})
	r := adminRouter(t, api)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin?status=pending&q=jane", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "ID: abc123")
	assert.NotContains(t, body, "xyz789")
	assert.Contains(t, body, "Jane Doe")
}

func TestDashboardStatsCoverTheFullSnapshot(t *testing.T) {
	api := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(adminBookingsJSON))
	})
	r := adminRouter(t, api)

	// Filters narrow the table, never the stat cards.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin?status=cancelled", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Total Bookings</span><strong>2</strong>")
	assert.Contains(t, body, "Est. Revenue</span><strong>$30</strong>")
	assert.Contains(t, body, "No bookings found.")
}

func TestDashboardSearchKeepsActiveFilter(t *testing.T) {
	api := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(adminBookingsJSON))
	})
	r := adminRouter(t, api)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin?status=pending&q=jane", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	// Pills are plain links carrying the current search term, so typing a
	// search and pressing Enter can never override the active status.
	assert.Contains(t, body, `href="/admin?status=confirmed&q=jane"`)
	assert.NotContains(t, body, `name="status" value="all"`)
	// The search form resends the active status filter.
	assert.Contains(t, body, `<input type="hidden" name="status" value="pending">`)
}

func TestDashboardBackendFailureStillRenders(t *testing.T) {
	api := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"upstream down"}`))
	})
	r := adminRouter(t, api)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "upstream down")
}

func TestStatusConfirmRendersBooking(t *testing.T) {
	api := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/abc123", r.URL.Path)
		w.Write([]byte(`{"booking": {"_id": "abc123", "service": {"_id": "s1", "name": "Baby Care"}, "status": "pending"}}`))
	})
	r := adminRouter(t, api)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/bookings/abc123/status?to=confirmed", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Baby Care")
	assert.Contains(t, body, "confirmed")
}

func TestStatusConfirmRejectsUnknownStatus(t *testing.T) {
	hits := 0
	api := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
	})
	r := adminRouter(t, api)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/bookings/abc123/status?to=shipped", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.Zero(t, hits, "invalid status must not reach the backend")

	kind, msg := flashMessage(t, w)
	assert.Equal(t, "error", kind)
	assert.Equal(t, "Unknown status.", msg)
}

func TestUpdateStatusSuccess(t *testing.T) {
	api := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/bookings/abc123/status", r.URL.Path)
		w.Write([]byte(`{"booking": {"_id": "abc123", "status": "confirmed"}}`))
	})
	r := adminRouter(t, api)

	w := postForm(r, "/admin/bookings/abc123/status", url.Values{"status": {"confirmed"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	kind, msg := flashMessage(t, w)
	assert.Equal(t, "success", kind)
	assert.Contains(t, msg, "confirmed")
}

func TestUpdateStatusFailureFlashesErrorWithoutLocalPatch(t *testing.T) {
	api := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Transition not allowed"}`))
	})
	r := adminRouter(t, api)

	w := postForm(r, "/admin/bookings/abc123/status", url.Values{"status": {"completed"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	kind, msg := flashMessage(t, w)
	assert.Equal(t, "error", kind)
	assert.Equal(t, "Transition not allowed", msg)
}
