// Package booking holds the pure booking rules the pages share: cost
// derivation, the terminal-status rule, and the admin dashboard's in-memory
// filtering and statistics.
package booking

import (
	"errors"
	"strings"

	"github.com/alamin-islam0/care-xyz-frontend/internal/models"
)

var ErrInvalidState = errors.New("booking is already completed or cancelled")

// TotalCost derives the displayed total from duration × unit rate. The
// backend recomputes on its side; this value is presentation only.
func TotalCost(svc *models.Service, durationType models.DurationType, durationValue int) float64 {
	if svc == nil || durationValue < 0 {
		return 0
	}
	return svc.Rate(durationType) * float64(durationValue)
}

// CanCancel reports whether a cancel action may be offered for the status.
func CanCancel(current models.Status) error {
	if current.Terminal() {
		return ErrInvalidState
	}
	return nil
}

// FilterAll is the status filter value that matches every booking.
const FilterAll = "all"

// Filter applies the admin dashboard's status filter and free-text search to
// an in-memory booking set. The search term matches case-insensitively
// against the booking id, customer name and customer email; both conditions
// must hold.
func Filter(bookings []models.Booking, statusFilter, search string) []models.Booking {
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if statusFilter != "" && statusFilter != FilterAll && string(b.Status) != statusFilter {
			continue
		}
		if search != "" && !matchesSearch(b, search) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchesSearch(b models.Booking, search string) bool {
	if strings.Contains(strings.ToLower(b.ID), search) {
		return true
	}
	if u, ok := b.User.Embedded(); ok {
		if strings.Contains(strings.ToLower(u.Name), search) {
			return true
		}
		if strings.Contains(strings.ToLower(u.Email), search) {
			return true
		}
	}
	return false
}

type Stats struct {
	Total     int
	Pending   int
	Confirmed int
	Completed int
	Cancelled int
	// Revenue sums totalCost over confirmed and completed bookings.
	Revenue float64
}

// Active is the combined confirmed+completed count shown on the dashboard.
func (s Stats) Active() int {
	return s.Confirmed + s.Completed
}

func ComputeStats(bookings []models.Booking) Stats {
	var s Stats
	s.Total = len(bookings)
	for _, b := range bookings {
		switch b.Status {
		case models.StatusPending:
			s.Pending++
		case models.StatusConfirmed:
			s.Confirmed++
			s.Revenue += b.TotalCost
		case models.StatusCompleted:
			s.Completed++
			s.Revenue += b.TotalCost
		case models.StatusCancelled:
			s.Cancelled++
		}
	}
	return s
}

// ApplyStatus returns a copy of the list with the matched booking's status
// replaced. When no booking carries the id the input is returned unchanged,
// so a failed update never leaves a partial mutation behind.
func ApplyStatus(bookings []models.Booking, id string, status models.Status) []models.Booking {
	idx := -1
	for i := range bookings {
		if bookings[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return bookings
	}

	out := make([]models.Booking, len(bookings))
	copy(out, bookings)
	out[idx].Status = status
	return out
}
