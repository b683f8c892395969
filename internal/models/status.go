package models

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// AllStatuses is the display order used by the admin filter row and the
// per-row status select.
var AllStatuses = []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses accept no further user-initiated transition.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// BadgeClass maps a status to its display color classes.
func (s Status) BadgeClass() string {
	switch s {
	case StatusPending:
		return "badge badge-yellow"
	case StatusConfirmed:
		return "badge badge-blue"
	case StatusCompleted:
		return "badge badge-green"
	case StatusCancelled:
		return "badge badge-red"
	}
	return "badge badge-gray"
}

// ===============================
// Booking Duration
// ===============================

type DurationType string

const (
	DurationHours DurationType = "hours"
	DurationDays  DurationType = "days"
)

func (d DurationType) Valid() bool {
	return d == DurationHours || d == DurationDays
}

// Unit is the singular unit label ("hour" / "day") for rate lines.
func (d DurationType) Unit() string {
	if d == DurationDays {
		return "day"
	}
	return "hour"
}
