package booking

import (
	"fmt"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/payment"
)

// Reservation groups one or more rooms booked by a customer for a date
// range.  Values handed out by the Coordinator are snapshots: changing them
// has no effect on the coordinator's state.
//
// Fields:
//  ID          – generated identifier (UUID).
//  Customer    – guest who owns the reservation.
//  RoomNumbers – catalog keys of the booked rooms, in request order.
//  CheckIn     – first night (date only).
//  CheckOut    – departure date, strictly after CheckIn.
//  Payment     – method charged on confirmation.
//  Status      – PENDING, CONFIRMED or CANCELLED.
//  Total       – price of the stay, recomputed whenever dates change.
//  Plan        – STANDARD or PREMIUM pricing.
//  Perks       – benefits included with the plan.
//  CreatedAt   – creation timestamp.
type Reservation struct {
	ID          string                  `json:"id"`
	Customer    model.Customer          `json:"customer"`
	RoomNumbers []string                `json:"room_numbers"`
	CheckIn     time.Time               `json:"check_in"`
	CheckOut    time.Time               `json:"check_out"`
	Payment     payment.Method          `json:"-"`
	Status      model.ReservationStatus `json:"status"`
	Total       float64                 `json:"total"`
	Plan        Plan                    `json:"plan"`
	Perks       Perks                   `json:"perks"`
	CreatedAt   time.Time               `json:"created_at"`
}

// Nights returns the length of the stay.
func (r Reservation) Nights() int { return Nights(r.CheckIn, r.CheckOut) }

// IsPremium reports whether the reservation uses the premium plan.
func (r Reservation) IsPremium() bool { return r.Plan == PlanPremium }

func (r Reservation) String() string {
	s := fmt.Sprintf("Reservation ID: %s | Customer: %s | Rooms: %d | Check-in: %s | Check-out: %s | Status: %s | Total: $%.2f",
		r.ID, r.Customer.Name, len(r.RoomNumbers),
		r.CheckIn.Format(time.DateOnly), r.CheckOut.Format(time.DateOnly), r.Status, r.Total)
	if r.IsPremium() {
		s += fmt.Sprintf(" [PREMIUM - Discount: %.0f%%]", PremiumDiscount*100)
	}
	return s
}

func (r *Reservation) snapshot() Reservation {
	out := *r
	out.RoomNumbers = append([]string(nil), r.RoomNumbers...)
	return out
}

// reprice recomputes Total from the current rooms and dates.
func (r *Reservation) reprice(rooms *Catalog) {
	rates := make([]float64, 0, len(r.RoomNumbers))
	for _, n := range r.RoomNumbers {
		if room, ok := rooms.get(n); ok {
			rates = append(rates, room.NightlyRate)
		}
	}
	r.Total = r.Plan.Price(rates, r.Nights())
}

// confirm occupies every room and charges the payment method.  Only
// PENDING reservations can be confirmed.  If any room is already occupied
// nothing changes.  If the charge is declined the rooms are released again
// and the reservation stays PENDING, so it can be retried or cancelled.
func (r *Reservation) confirm(rooms *Catalog) error {
	if r.Status != model.StatusPending {
		return fmt.Errorf("confirm reservation %s in status %s: %w", r.ID, r.Status, ErrInvalidState)
	}
	held, err := rooms.resolve(r.RoomNumbers)
	if err != nil {
		return err
	}
	for _, room := range held {
		if !room.IsAvailable() {
			return &RoomError{Number: room.Number, Err: ErrRoomUnavailable}
		}
	}
	for _, room := range held {
		room.MarkOccupied()
	}
	if !r.Payment.Charge(r.Total) {
		for _, room := range held {
			room.MarkAvailable()
		}
		return fmt.Errorf("reservation %s via %s: %w", r.ID, r.Payment.Name(), ErrPaymentFailed)
	}
	r.Status = model.StatusConfirmed
	return nil
}

// cancel releases every room and marks the reservation CANCELLED.  Pending
// and confirmed reservations can be cancelled.
func (r *Reservation) cancel(rooms *Catalog) error {
	if r.Status == model.StatusCancelled {
		return fmt.Errorf("cancel reservation %s: already cancelled: %w", r.ID, ErrInvalidState)
	}
	for _, n := range r.RoomNumbers {
		if room, ok := rooms.get(n); ok {
			room.MarkAvailable()
		}
	}
	r.Status = model.StatusCancelled
	return nil
}

// changeDates moves the stay and reprices it.  Room availability is not
// re-checked for the new range.
func (r *Reservation) changeDates(rooms *Catalog, checkIn, checkOut time.Time) error {
	if r.Status == model.StatusCancelled {
		return fmt.Errorf("change dates of reservation %s: cancelled: %w", r.ID, ErrInvalidState)
	}
	checkIn, checkOut = Day(checkIn), Day(checkOut)
	if !checkIn.Before(checkOut) {
		return fmt.Errorf("%s to %s: %w", checkIn.Format(time.DateOnly), checkOut.Format(time.DateOnly), ErrInvalidRange)
	}
	r.CheckIn, r.CheckOut = checkIn, checkOut
	r.reprice(rooms)
	return nil
}
