// Package queue defines message payloads exchanged over the message broker.
package queue

import (
    "time"

    "github.com/iliyamo/hotel-reservation/internal/booking"
)

// DefaultQueue is the queue reservation events are published to.
const DefaultQueue = "hotel.reservations"

// ReservationEvent is published whenever a reservation changes.  It
// contains enough information for downstream consumers to log, notify, or
// feed analytics without calling back into the service.  Payment details
// are reduced to the method's redacted description.
type ReservationEvent struct {
    Type          string   `json:"type"`
    ReservationID string   `json:"reservation_id"`
    CustomerName  string   `json:"customer_name"`
    CustomerDoc   string   `json:"customer_document"`
    Rooms         []string `json:"rooms"`
    CheckIn       string   `json:"check_in"`
    CheckOut      string   `json:"check_out"`
    Status        string   `json:"status"`
    Plan          string   `json:"plan"`
    Total         float64  `json:"total"`
    PaymentMethod string   `json:"payment_method,omitempty"`
    PaymentDetail string   `json:"payment_detail,omitempty"`
    OccurredAt    string   `json:"occurred_at"`
}

// FromBooking converts a coordinator event into its wire form.
func FromBooking(e booking.Event) ReservationEvent {
    r := e.Reservation
    ev := ReservationEvent{
        Type:          string(e.Type),
        ReservationID: r.ID,
        CustomerName:  r.Customer.Name,
        CustomerDoc:   r.Customer.DocumentNumber,
        Rooms:         append([]string(nil), r.RoomNumbers...),
        CheckIn:       r.CheckIn.Format(time.DateOnly),
        CheckOut:      r.CheckOut.Format(time.DateOnly),
        Status:        string(r.Status),
        Plan:          string(r.Plan),
        Total:         r.Total,
        OccurredAt:    e.At.UTC().Format(time.RFC3339),
    }
    if r.Payment != nil {
        ev.PaymentMethod = r.Payment.Name()
        ev.PaymentDetail = r.Payment.Describe()
    }
    return ev
}
