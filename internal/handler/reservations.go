package handler

// Reservation endpoints used by the front desk.  Every route in this file
// sits behind JWTAuth + RequireRole(STAFF).  Handlers translate JSON into
// coordinator calls and coordinator errors into status codes (see
// statusFor); none of them touch room state directly.

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/booking"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/payment"
	"github.com/iliyamo/hotel-reservation/internal/voucher"
)

// ReservationHandler bundles the coordinator with the logger used for audit
// lines.  Now is overridable for tests.
type ReservationHandler struct {
	Hotel *booking.Coordinator
	Log   *slog.Logger
	Now   func() time.Time
}

func NewReservationHandler(hotel *booking.Coordinator, log *slog.Logger) *ReservationHandler {
	if hotel == nil {
		panic("nil coordinator passed to NewReservationHandler")
	}
	return &ReservationHandler{Hotel: hotel, Log: log, Now: time.Now}
}

// ----- DTOs -----

type customerReq struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	DocumentNumber string `json:"document_number" validate:"required"`
}

type createReservationReq struct {
	Customer customerReq     `json:"customer"`
	Rooms    []string        `json:"rooms" validate:"required,min=1,dive,required"`
	CheckIn  string          `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string          `json:"check_out" validate:"required,datetime=2006-01-02"`
	Premium  bool            `json:"premium"`
	Payment  payment.Details `json:"payment"`
}

type changeDatesReq struct {
	CheckIn  string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
}

type batchConfirmReq struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

type batchResult struct {
	ID          string           `json:"id"`
	OK          bool             `json:"ok"`
	Error       string           `json:"error,omitempty"`
	Reservation *reservationView `json:"reservation,omitempty"`
}

func parseRange(in, out string) (time.Time, time.Time, error) {
	checkIn, err := parseDate(in)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("check_in must be YYYY-MM-DD")
	}
	checkOut, err := parseDate(out)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("check_out must be YYYY-MM-DD")
	}
	return checkIn, checkOut, nil
}

// CreateReservation handles POST /v1/reservations.  The reservation is
// created PENDING; rooms are only occupied on confirmation.
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req createReservationReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	req.Customer.Name = strings.TrimSpace(req.Customer.Name)
	req.Customer.DocumentNumber = strings.TrimSpace(req.Customer.DocumentNumber)
	if req.Customer.Name == "" || req.Customer.DocumentNumber == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer name/document_number required"})
	}
	checkIn, checkOut, err := parseRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	method, err := payment.New(req.Payment)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unsupported payment method"})
	}

	customer := model.NewCustomer(req.Customer.Name, strings.TrimSpace(req.Customer.Email),
		strings.TrimSpace(req.Customer.Phone), req.Customer.DocumentNumber)
	create := h.Hotel.CreateReservation
	if req.Premium {
		create = h.Hotel.CreatePremiumReservation
	}
	r, err := create(customer, req.Rooms, checkIn, checkOut, method)
	if err != nil {
		return bookingError(c, h.Log, err)
	}
	h.Log.Info("[reservations] created", "id", r.ID, "by", middleware.Subject(c), "plan", r.Plan)
	return c.JSON(http.StatusCreated, echo.Map{"item": newReservationView(r)})
}

// ListReservations handles GET /v1/reservations?status=.  Without a
// status filter every reservation is returned in creation order.
func (h *ReservationHandler) ListReservations(c echo.Context) error {
	all := h.Hotel.AllReservations()
	if s := strings.ToUpper(strings.TrimSpace(c.QueryParam("status"))); s != "" {
		kept := all[:0]
		for _, r := range all {
			if string(r.Status) == s {
				kept = append(kept, r)
			}
		}
		all = kept
	}
	items := newReservationViews(all)
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// GetReservation handles GET /v1/reservations/:id.
func (h *ReservationHandler) GetReservation(c echo.Context) error {
	r, err := h.Hotel.Reservation(c.Param("id"))
	if err != nil {
		return bookingError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": newReservationView(r)})
}

// ConfirmReservation handles POST /v1/reservations/:id/confirm.  A declined
// payment answers 402 and leaves the reservation PENDING.
func (h *ReservationHandler) ConfirmReservation(c echo.Context) error {
	r, err := h.Hotel.ConfirmReservation(c.Param("id"))
	if err != nil {
		return bookingError(c, h.Log, err)
	}
	h.Log.Info("[reservations] confirmed", "id", r.ID, "by", middleware.Subject(c), "total", r.Total)
	return c.JSON(http.StatusOK, echo.Map{"item": newReservationView(r)})
}

// ConfirmBatch handles POST /v1/reservations/confirm.  Each id is confirmed
// independently; failures are reported per item and do not stop the batch.
func (h *ReservationHandler) ConfirmBatch(c echo.Context) error {
	var req batchConfirmReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	results := h.Hotel.ConfirmAll(req.IDs)
	out := make([]batchResult, 0, len(results))
	for _, res := range results {
		br := batchResult{ID: res.ID, OK: res.Err == nil}
		if res.Err != nil {
			br.Error = res.Err.Error()
		} else {
			v := newReservationView(res.Reservation)
			br.Reservation = &v
		}
		out = append(out, br)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":  out,
		"count":  len(out),
		"failed": booking.Failed(results),
	})
}

// ChangeDates handles PATCH /v1/reservations/:id/dates.
func (h *ReservationHandler) ChangeDates(c echo.Context) error {
	var req changeDatesReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	checkIn, checkOut, err := parseRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	r, err := h.Hotel.ChangeReservationDates(c.Param("id"), checkIn, checkOut)
	if err != nil {
		return bookingError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": newReservationView(r)})
}

// CancelReservation handles DELETE /v1/reservations/:id.  Cancelling a
// confirmed reservation frees its rooms; the charge is not refunded.
func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	r, err := h.Hotel.CancelReservation(c.Param("id"))
	if err != nil {
		return bookingError(c, h.Log, err)
	}
	h.Log.Info("[reservations] cancelled", "id", r.ID, "by", middleware.Subject(c))
	return c.JSON(http.StatusOK, echo.Map{"item": newReservationView(r)})
}

// Voucher handles GET /v1/reservations/:id/voucher and streams a PDF.
// Only confirmed reservations have a voucher.
func (h *ReservationHandler) Voucher(c echo.Context) error {
	r, err := h.Hotel.Reservation(c.Param("id"))
	if err != nil {
		return bookingError(c, h.Log, err)
	}
	rooms := make([]model.Room, 0, len(r.RoomNumbers))
	for _, n := range r.RoomNumbers {
		if room, ok := h.Hotel.FindRoom(n); ok {
			rooms = append(rooms, room)
		}
	}
	pdf, err := voucher.Render(r, rooms, h.Now())
	if errors.Is(err, voucher.ErrNotConfirmed) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "reservation is not confirmed"})
	}
	if err != nil {
		h.Log.Error("[reservations] voucher render failed", "id", r.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to render voucher"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=voucher-"+r.ID+".pdf")
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// CustomerReservations handles GET /v1/customers/:document/reservations.
// Customers are identified by document number.
func (h *ReservationHandler) CustomerReservations(c echo.Context) error {
	doc := strings.TrimSpace(c.Param("document"))
	if doc == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "document required"})
	}
	items := newReservationViews(h.Hotel.ReservationsForCustomer(model.Customer{DocumentNumber: doc}))
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}
