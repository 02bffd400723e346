package model

// ReservationStatus is the lifecycle state of a reservation.  A reservation
// starts PENDING and ends either CONFIRMED or CANCELLED; a confirmed
// reservation may still be cancelled.
type ReservationStatus string

const (
    StatusPending   ReservationStatus = "PENDING"
    StatusConfirmed ReservationStatus = "CONFIRMED"
    StatusCancelled ReservationStatus = "CANCELLED"
)

// Description returns a short human label for the status.
func (s ReservationStatus) Description() string {
    switch s {
    case StatusPending:
        return "Pending confirmation"
    case StatusConfirmed:
        return "Confirmed and paid"
    case StatusCancelled:
        return "Cancelled"
    }
    return string(s)
}
