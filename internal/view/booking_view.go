package view

import (
	"fmt"

	"github.com/alamin-islam0/care-xyz-frontend/internal/booking"
	"github.com/alamin-islam0/care-xyz-frontend/internal/models"
	"github.com/alamin-islam0/care-xyz-frontend/internal/timezone"
)

// BookingRow is a booking flattened for list and table templates.
type BookingRow struct {
	ID            string
	ShortID       string
	ServiceName   string
	CustomerName  string
	CustomerEmail string
	Duration      string
	StartDate     string
	Place         string
	Amount        string
	Status        models.Status
	BadgeClass    string
	CanCancel     bool
}

func NewBookingRow(b models.Booking) BookingRow {
	row := BookingRow{
		ID:          b.ID,
		ShortID:     shortID(b.ID),
		ServiceName: "Service Unavailable",
		Duration:    fmt.Sprintf("%d %s", b.DurationValue, b.DurationType),
		StartDate:   timezone.FormatDateTime(b.StartDate),
		Place:       b.Location.City + ", " + b.Location.Area,
		Amount:      FormatMoney(b.TotalCost),
		Status:      b.Status,
		BadgeClass:  b.Status.BadgeClass(),
		CanCancel:   booking.CanCancel(b.Status) == nil,
	}

	if svc, ok := b.Service.Embedded(); ok {
		row.ServiceName = svc.Name
	}
	if u, ok := b.User.Embedded(); ok {
		row.CustomerName = u.Name
		row.CustomerEmail = u.Email
	}
	return row
}

func NewBookingRows(bookings []models.Booking) []BookingRow {
	rows := make([]BookingRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, NewBookingRow(b))
	}
	return rows
}

// BookingDetail adds the full address and lifecycle dates on top of the row.
type BookingDetail struct {
	BookingRow
	Division  string
	District  string
	City      string
	Area      string
	Address   string
	CreatedAt string
	UpdatedAt string
}

func NewBookingDetail(b models.Booking) BookingDetail {
	return BookingDetail{
		BookingRow: NewBookingRow(b),
		Division:   b.Location.Division,
		District:   b.Location.District,
		City:       b.Location.City,
		Area:       b.Location.Area,
		Address:    b.Location.Address,
		CreatedAt:  timezone.FormatDateTime(b.CreatedAt),
		UpdatedAt:  timezone.FormatDateTime(b.UpdatedAt),
	}
}

// shortID keeps the table readable: the last 6 characters identify a
// booking the way the admin tools always displayed it.
func shortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}
