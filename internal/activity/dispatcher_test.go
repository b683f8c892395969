package activity

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDispatchWritesEventAfterClose(t *testing.T) {
	var buf bytes.Buffer
	d := NewDispatcher(zerolog.New(&buf))

	d.Dispatch(Event{Action: "booking_created", UserID: "u1", BookingID: "b1", ServiceID: "s1"})
	d.Dispatch(Event{Action: "user_logged_in", UserID: "u2"})
	d.Close()

	out := buf.String()
	assert.Contains(t, out, `"action":"booking_created"`)
	assert.Contains(t, out, `"booking_id":"b1"`)
	assert.Contains(t, out, `"action":"user_logged_in"`)
	assert.NotContains(t, out, `"service_id":""`)
}

func TestEmptyFieldsAreOmitted(t *testing.T) {
	var buf bytes.Buffer
	d := NewDispatcher(zerolog.New(&buf))

	d.Dispatch(Event{Action: "user_logged_out"})
	d.Close()

	out := buf.String()
	assert.Contains(t, out, `"action":"user_logged_out"`)
	assert.NotContains(t, out, "user_id")
	assert.NotContains(t, out, "booking_id")
}
