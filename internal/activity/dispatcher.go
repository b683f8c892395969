// Package activity records user-visible actions (logins, bookings, status
// changes) on a background worker so page handlers never block on logging.
package activity

import (
	"sync"

	"github.com/rs/zerolog"
)

type Event struct {
	Action    string
	UserID    string
	BookingID string
	ServiceID string
	Detail    string
}

type Dispatcher struct {
	log   zerolog.Logger
	queue chan Event
	wg    sync.WaitGroup
}

func NewDispatcher(log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		log:   log,
		queue: make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		entry := d.log.Info().
			Str("action", ev.Action)
		if ev.UserID != "" {
			entry = entry.Str("user_id", ev.UserID)
		}
		if ev.BookingID != "" {
			entry = entry.Str("booking_id", ev.BookingID)
		}
		if ev.ServiceID != "" {
			entry = entry.Str("service_id", ev.ServiceID)
		}
		if ev.Detail != "" {
			entry = entry.Str("detail", ev.Detail)
		}
		entry.Msg("activity")
	}
}

// Dispatch enqueues an event. A full queue drops the event rather than
// stalling the request.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("activity queue full, dropping event")
	}
}

// Close drains pending events and stops the worker.
func (d *Dispatcher) Close() {
	close(d.queue)
	d.wg.Wait()
}
