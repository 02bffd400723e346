package booking

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/payment"
)

// Coordinator owns the room catalog and the reservations and is the only
// entry point that changes them.  Every operation runs under one mutex, so
// a Coordinator is safe for concurrent use.  Values it returns are copies.
type Coordinator struct {
	mu           sync.Mutex
	catalog      *Catalog
	reservations []*Reservation // creation order
	byID         map[string]*Reservation

	log   *slog.Logger
	sink  EventSink
	now   func() time.Time
	newID func() string
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger used for operation logs.
func WithLogger(l *slog.Logger) Option { return func(c *Coordinator) { c.log = l } }

// WithEventSink sets where lifecycle events are delivered.
func WithEventSink(s EventSink) Option { return func(c *Coordinator) { c.sink = s } }

// WithClock overrides the time source used for CreatedAt and event stamps.
func WithClock(now func() time.Time) Option { return func(c *Coordinator) { c.now = now } }

// WithIDGenerator overrides reservation id generation.
func WithIDGenerator(f func() string) Option { return func(c *Coordinator) { c.newID = f } }

// NewCoordinator returns a coordinator with an empty catalog.  Without a
// sink, events are written to the logger.
func NewCoordinator(opts ...Option) *Coordinator {
	c := &Coordinator{
		catalog: NewCatalog(),
		byID:    make(map[string]*Reservation),
		log:     slog.Default(),
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	if c.sink == nil {
		c.sink = LogSink(c.log)
	}
	return c
}

// RegisterRoom adds a room to the catalog.  Room numbers are not checked
// for duplicates.
func (c *Coordinator) RegisterRoom(room model.Room) {
	c.mu.Lock()
	c.catalog.Add(room)
	c.mu.Unlock()
	c.log.Info("[booking] room registered", "room", room.String())
}

// FindRoom returns the first room registered under number.
func (c *Coordinator) FindRoom(number string) (model.Room, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.Find(number)
}

// Rooms returns the whole catalog in registration order.
func (c *Coordinator) Rooms() []model.Room {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.Rooms()
}

// AvailableRooms returns the rooms that are free right now.  The dates are
// accepted for API symmetry but do not filter anything: availability is a
// single flag per room, not a per-date ledger.
func (c *Coordinator) AvailableRooms(checkIn, checkOut time.Time) []model.Room {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.Available()
}

// CreateReservation validates the request and records a PENDING
// reservation.  Rooms are not occupied until the reservation is confirmed.
func (c *Coordinator) CreateReservation(customer model.Customer, roomNumbers []string, checkIn, checkOut time.Time, method payment.Method) (Reservation, error) {
	return c.create(PlanStandard, customer, roomNumbers, checkIn, checkOut, method)
}

// CreatePremiumReservation is CreateReservation with the premium plan:
// discounted total and perks activated on confirmation.
func (c *Coordinator) CreatePremiumReservation(customer model.Customer, roomNumbers []string, checkIn, checkOut time.Time, method payment.Method) (Reservation, error) {
	return c.create(PlanPremium, customer, roomNumbers, checkIn, checkOut, method)
}

func (c *Coordinator) create(plan Plan, customer model.Customer, roomNumbers []string, checkIn, checkOut time.Time, method payment.Method) (Reservation, error) {
	checkIn, checkOut = Day(checkIn), Day(checkOut)
	if !checkIn.Before(checkOut) {
		return Reservation{}, fmt.Errorf("%s to %s: %w", checkIn.Format(time.DateOnly), checkOut.Format(time.DateOnly), ErrInvalidRange)
	}
	if len(roomNumbers) == 0 {
		return Reservation{}, ErrNoRooms
	}
	if method == nil {
		return Reservation{}, ErrNoPaymentMethod
	}

	c.mu.Lock()
	rooms, err := c.catalog.resolve(roomNumbers)
	if err != nil {
		c.mu.Unlock()
		return Reservation{}, err
	}
	for _, room := range rooms {
		if !room.IsAvailable() {
			c.mu.Unlock()
			return Reservation{}, &RoomError{Number: room.Number, Err: ErrRoomUnavailable}
		}
	}
	r := &Reservation{
		ID:          c.newID(),
		Customer:    customer,
		RoomNumbers: append([]string(nil), roomNumbers...),
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Payment:     method,
		Status:      model.StatusPending,
		Plan:        plan,
		Perks:       plan.Perks(),
		CreatedAt:   c.now(),
	}
	r.reprice(c.catalog)
	c.reservations = append(c.reservations, r)
	c.byID[r.ID] = r
	snap := r.snapshot()
	c.mu.Unlock()

	c.emit(EventCreated, snap)
	return snap, nil
}

// Reservation returns the reservation with the given id.
func (c *Coordinator) Reservation(id string) (Reservation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.byID[id]
	if !ok {
		return Reservation{}, fmt.Errorf("reservation %s: %w", id, ErrReservationNotFound)
	}
	return r.snapshot(), nil
}

// ConfirmReservation occupies the reservation's rooms and charges its
// payment method.  On a declined payment the rooms are released, the
// reservation stays PENDING and ErrPaymentFailed is returned together with
// the unchanged reservation.
func (c *Coordinator) ConfirmReservation(id string) (Reservation, error) {
	c.mu.Lock()
	r, ok := c.byID[id]
	if !ok {
		c.mu.Unlock()
		return Reservation{}, fmt.Errorf("reservation %s: %w", id, ErrReservationNotFound)
	}
	err := r.confirm(c.catalog)
	snap := r.snapshot()
	c.mu.Unlock()

	if err != nil {
		c.log.Warn("[booking] confirm failed", "id", id, "err", err)
		return snap, err
	}
	c.emit(EventConfirmed, snap)
	if snap.Perks.Any() {
		c.emit(EventPerksActivated, snap)
	}
	return snap, nil
}

// ChangeReservationDates moves a reservation to a new date range and
// reprices it.  Cancelled reservations cannot be changed.
func (c *Coordinator) ChangeReservationDates(id string, checkIn, checkOut time.Time) (Reservation, error) {
	c.mu.Lock()
	r, ok := c.byID[id]
	if !ok {
		c.mu.Unlock()
		return Reservation{}, fmt.Errorf("reservation %s: %w", id, ErrReservationNotFound)
	}
	err := r.changeDates(c.catalog, checkIn, checkOut)
	snap := r.snapshot()
	c.mu.Unlock()

	if err != nil {
		return snap, err
	}
	c.emit(EventDatesChanged, snap)
	return snap, nil
}

// CancelReservation releases the reservation's rooms and marks it
// CANCELLED.
func (c *Coordinator) CancelReservation(id string) (Reservation, error) {
	c.mu.Lock()
	r, ok := c.byID[id]
	if !ok {
		c.mu.Unlock()
		return Reservation{}, fmt.Errorf("reservation %s: %w", id, ErrReservationNotFound)
	}
	err := r.cancel(c.catalog)
	snap := r.snapshot()
	c.mu.Unlock()

	if err != nil {
		return snap, err
	}
	c.emit(EventCancelled, snap)
	return snap, nil
}

// ReservationsForCustomer returns the customer's reservations in creation
// order.  Customers are matched by document number.
func (c *Coordinator) ReservationsForCustomer(customer model.Customer) []Reservation {
	return c.filter(func(r *Reservation) bool { return r.Customer.Is(customer) })
}

// ConfirmedReservations returns every CONFIRMED reservation.
func (c *Coordinator) ConfirmedReservations() []Reservation {
	return c.filter(func(r *Reservation) bool { return r.Status == model.StatusConfirmed })
}

// AllReservations returns every reservation in creation order.
func (c *Coordinator) AllReservations() []Reservation {
	return c.filter(func(*Reservation) bool { return true })
}

// TotalRevenue sums the totals of confirmed reservations.
func (c *Coordinator) TotalRevenue() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	sum := 0.0
	for _, r := range c.reservations {
		if r.Status == model.StatusConfirmed {
			sum += r.Total
		}
	}
	return sum
}

func (c *Coordinator) filter(keep func(*Reservation) bool) []Reservation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Reservation, 0, len(c.reservations))
	for _, r := range c.reservations {
		if keep(r) {
			out = append(out, r.snapshot())
		}
	}
	return out
}

func (c *Coordinator) emit(t EventType, r Reservation) {
	c.sink.Emit(Event{Type: t, Reservation: r, At: c.now()})
}
