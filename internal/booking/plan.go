package booking

import (
	"math"
	"time"
)

// Plan selects the pricing policy and perks of a reservation.  Premium
// reservations follow exactly the same lifecycle as standard ones; only the
// price and the perks differ.
type Plan string

const (
	PlanStandard Plan = "STANDARD"
	PlanPremium  Plan = "PREMIUM"
)

// PremiumDiscount is the share taken off a premium reservation's total.
const PremiumDiscount = 0.15

// Perks are the non-monetary benefits bundled with a reservation.
type Perks struct {
	Breakfast      bool `json:"breakfast"`
	RoomService24h bool `json:"room_service_24h"`
	LoungeAccess   bool `json:"lounge_access"`
}

// Any reports whether at least one perk is included.
func (p Perks) Any() bool { return p.Breakfast || p.RoomService24h || p.LoungeAccess }

// Perks returns the perks included with the plan.
func (p Plan) Perks() Perks {
	if p == PlanPremium {
		return Perks{Breakfast: true, RoomService24h: true, LoungeAccess: true}
	}
	return Perks{}
}

// Price computes the total for a stay: the sum of nightly rates times the
// number of nights, discounted for premium reservations.
func (p Plan) Price(rates []float64, nights int) float64 {
	sum := 0.0
	for _, r := range rates {
		sum += r
	}
	total := sum * float64(nights)
	if p == PlanPremium {
		total *= 1 - PremiumDiscount
	}
	return total
}

// Day truncates t to midnight UTC of its calendar date.  Reservation dates
// carry no time of day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights returns the whole number of days between two dates.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Round(Day(checkOut).Sub(Day(checkIn)).Hours() / 24))
}
