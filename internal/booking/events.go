package booking

import (
	"log/slog"
	"time"
)

// EventType names a change in a reservation's lifecycle.
type EventType string

const (
	EventCreated        EventType = "reservation.created"
	EventConfirmed      EventType = "reservation.confirmed"
	EventCancelled      EventType = "reservation.cancelled"
	EventDatesChanged   EventType = "reservation.dates_changed"
	EventPerksActivated EventType = "reservation.perks_activated"
)

// Event is emitted by the Coordinator after a successful operation.  It
// carries a snapshot of the reservation as it was right after the change.
type Event struct {
	Type        EventType
	Reservation Reservation
	At          time.Time
}

// EventSink receives coordinator events.  Emit is called outside the
// coordinator lock, in operation order, on the caller's goroutine.
type EventSink interface {
	Emit(Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

func (f EventSinkFunc) Emit(e Event) { f(e) }

// MultiSink fans an event out to several sinks.
func MultiSink(sinks ...EventSink) EventSink {
	return EventSinkFunc(func(e Event) {
		for _, s := range sinks {
			if s != nil {
				s.Emit(e)
			}
		}
	})
}

// LogSink writes every event to log.  Perk activation is logged at info
// level with the perks that were switched on.
func LogSink(log *slog.Logger) EventSink {
	return EventSinkFunc(func(e Event) {
		r := e.Reservation
		if e.Type == EventPerksActivated {
			log.Info("[booking] premium perks activated",
				"id", r.ID,
				"breakfast", r.Perks.Breakfast,
				"room_service_24h", r.Perks.RoomService24h,
				"lounge_access", r.Perks.LoungeAccess)
			return
		}
		log.Info("[booking] "+string(e.Type), "id", r.ID, "status", r.Status, "total", r.Total)
	})
}
