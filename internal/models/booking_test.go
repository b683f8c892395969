package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingUnmarshalEmbeddedRefs(t *testing.T) {
	payload := `{
		"_id": "b1",
		"user": {"_id": "u1", "name": "Jane", "email": "jane@example.com", "role": "user"},
		"service": {"_id": "s1", "name": "Baby Care", "chargePerHour": 12, "chargePerDay": 80},
		"durationType": "hours",
		"durationValue": 4,
		"location": {"division": "Dhaka", "district": "Dhaka", "city": "Dhaka North", "area": "Uttara", "address": "House 7"},
		"totalCost": 48,
		"status": "pending"
	}`

	var b Booking
	require.NoError(t, json.Unmarshal([]byte(payload), &b))

	assert.Equal(t, "b1", b.ID)
	assert.Equal(t, DurationHours, b.DurationType)
	assert.Equal(t, 4, b.DurationValue)
	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, 48.0, b.TotalCost)
	assert.Equal(t, "Uttara", b.Location.Area)

	user, ok := b.User.Embedded()
	require.True(t, ok)
	assert.Equal(t, "Jane", user.Name)
	assert.Equal(t, "u1", b.User.ID())

	svc, ok := b.Service.Embedded()
	require.True(t, ok)
	assert.Equal(t, "Baby Care", svc.Name)
	assert.Equal(t, 12.0, svc.ChargePerHour)
}

func TestBookingUnmarshalBareRefs(t *testing.T) {
	payload := `{"_id": "b2", "user": "u2", "service": "s2", "status": "confirmed"}`

	var b Booking
	require.NoError(t, json.Unmarshal([]byte(payload), &b))

	_, ok := b.User.Embedded()
	assert.False(t, ok)
	assert.Equal(t, "u2", b.User.ID())

	_, ok = b.Service.Embedded()
	assert.False(t, ok)
	assert.Equal(t, "s2", b.Service.ID())
}

func TestRefMarshalRoundTrip(t *testing.T) {
	bare, err := json.Marshal(UserID("u3"))
	require.NoError(t, err)
	assert.JSONEq(t, `"u3"`, string(bare))

	embedded, err := json.Marshal(EmbeddedUser(User{ID: "u4", Name: "Bob", Email: "bob@example.com"}))
	require.NoError(t, err)
	assert.Contains(t, string(embedded), `"name":"Bob"`)
}

func TestStatus(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.False(t, Status("shipped").Valid())

	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
}

func TestStatusBadgeClass(t *testing.T) {
	assert.Equal(t, "badge badge-yellow", StatusPending.BadgeClass())
	assert.Equal(t, "badge badge-blue", StatusConfirmed.BadgeClass())
	assert.Equal(t, "badge badge-green", StatusCompleted.BadgeClass())
	assert.Equal(t, "badge badge-red", StatusCancelled.BadgeClass())
}

func TestServiceRate(t *testing.T) {
	svc := Service{ChargePerHour: 10, ChargePerDay: 70}
	assert.Equal(t, 10.0, svc.Rate(DurationHours))
	assert.Equal(t, 70.0, svc.Rate(DurationDays))
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin())

	var nilUser *User
	assert.False(t, nilUser.IsAdmin())
}
