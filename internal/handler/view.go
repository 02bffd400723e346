package handler

import (
	"time"

	"github.com/iliyamo/hotel-reservation/internal/booking"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// reservationView is the JSON shape of a reservation.  Payment credentials
// never leave the process; only the method's name and redacted
// description are exposed.
type reservationView struct {
	ID                string         `json:"id"`
	Customer          model.Customer `json:"customer"`
	Rooms             []string       `json:"rooms"`
	CheckIn           string         `json:"check_in"`
	CheckOut          string         `json:"check_out"`
	Nights            int            `json:"nights"`
	Status            string         `json:"status"`
	StatusDescription string         `json:"status_description"`
	Plan              string         `json:"plan"`
	Perks             booking.Perks  `json:"perks"`
	Total             float64        `json:"total"`
	PaymentMethod     string         `json:"payment_method,omitempty"`
	PaymentDetail     string         `json:"payment_detail,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
}

func newReservationView(r booking.Reservation) reservationView {
	v := reservationView{
		ID:                r.ID,
		Customer:          r.Customer,
		Rooms:             r.RoomNumbers,
		CheckIn:           r.CheckIn.Format(time.DateOnly),
		CheckOut:          r.CheckOut.Format(time.DateOnly),
		Nights:            r.Nights(),
		Status:            string(r.Status),
		StatusDescription: r.Status.Description(),
		Plan:              string(r.Plan),
		Perks:             r.Perks,
		Total:             r.Total,
		CreatedAt:         r.CreatedAt,
	}
	if r.Payment != nil {
		v.PaymentMethod = r.Payment.Name()
		v.PaymentDetail = r.Payment.Describe()
	}
	return v
}

func newReservationViews(rs []booking.Reservation) []reservationView {
	out := make([]reservationView, 0, len(rs))
	for _, r := range rs {
		out = append(out, newReservationView(r))
	}
	return out
}

type roomView struct {
	Number      string  `json:"number"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	NightlyRate float64 `json:"nightly_rate"`
	Available   bool    `json:"available"`
}

func newRoomViews(rooms []model.Room) []roomView {
	out := make([]roomView, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, roomView{
			Number:      r.Number,
			Category:    string(r.Category),
			Description: r.Category.Description(),
			NightlyRate: r.NightlyRate,
			Available:   r.Available,
		})
	}
	return out
}

// parseDate accepts YYYY-MM-DD.
func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}
