package timezone

import "time"

// CareXYZ operates in Bangladesh; all customer-facing dates render in Dhaka
// time regardless of where the server runs.
const DefaultTimezone = "Asia/Dhaka"

const (
	DisplayDateTime = "Jan 2, 2006 3:04 PM"
	DisplayDate     = "Jan 2, 2006"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// FormatDateTime renders a timestamp for page display.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(Location(DefaultTimezone)).Format(DisplayDateTime)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(Location(DefaultTimezone)).Format(DisplayDate)
}
