package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/booking"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/payment"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("x: %w", booking.ErrInvalidRange), http.StatusBadRequest},
		{&booking.RoomError{Number: "999", Err: booking.ErrRoomNotFound}, http.StatusBadRequest},
		{booking.ErrNoRooms, http.StatusBadRequest},
		{&booking.RoomError{Number: "101", Err: booking.ErrRoomUnavailable}, http.StatusConflict},
		{fmt.Errorf("confirm: %w", booking.ErrInvalidState), http.StatusConflict},
		{booking.ErrPaymentFailed, http.StatusPaymentRequired},
		{fmt.Errorf("reservation x: %w", booking.ErrReservationNotFound), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestReservationViewHidesCredentials(t *testing.T) {
	r := booking.Reservation{
		ID:          "res-1",
		Customer:    model.NewCustomer("Maria Garcia", "maria@email.com", "0987654321", "87654321"),
		RoomNumbers: []string{"201"},
		CheckIn:     time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2025, 12, 14, 0, 0, 0, 0, time.UTC),
		Payment:     payment.NewDebitCard("5555555555554444", "Maria Garcia", "2468"),
		Status:      model.StatusPending,
		Total:       480,
		Plan:        booking.PlanStandard,
	}
	bs, err := json.Marshal(newReservationView(r))
	if err != nil {
		t.Fatal(err)
	}
	body := string(bs)
	for _, secret := range []string{"5555555555554444", "2468"} {
		if strings.Contains(body, secret) {
			t.Fatalf("view leaks %q: %s", secret, body)
		}
	}
	for _, want := range []string{`"nights":4`, `"check_in":"2025-12-10"`, `"payment_method":"Debit Card"`, `"status_description":"Pending confirmation"`} {
		if !strings.Contains(body, want) {
			t.Errorf("view missing %s: %s", want, body)
		}
	}
}

func TestValidationMessage(t *testing.T) {
	v := NewRequestValidator()
	tests := []struct {
		req  interface{}
		want string
	}{
		{&createReservationReq{Customer: customerReq{Name: "Juan", DocumentNumber: "1"}, CheckIn: "2025-12-15", CheckOut: "2025-12-20"}, "rooms is required"},
		{&createReservationReq{Customer: customerReq{DocumentNumber: "1"}, Rooms: []string{"101"}, CheckIn: "2025-12-15", CheckOut: "2025-12-20"}, "customer.name is required"},
		{&createReservationReq{Customer: customerReq{Name: "Juan", DocumentNumber: "1", Email: "nope"}, Rooms: []string{"101"}, CheckIn: "2025-12-15", CheckOut: "2025-12-20"}, "customer.email must be a valid email"},
		{&changeDatesReq{CheckIn: "15/12/2025", CheckOut: "2025-12-20"}, "check_in must be YYYY-MM-DD"},
		{&batchConfirmReq{IDs: []string{}}, "ids needs at least 1 item(s)"},
	}
	for _, tt := range tests {
		err := v.Validate(tt.req)
		if err == nil {
			t.Errorf("Validate(%+v) passed", tt.req)
			continue
		}
		if got := validationMessage(err); got != tt.want {
			t.Errorf("message = %q, want %q", got, tt.want)
		}
	}
	ok := &createReservationReq{Customer: customerReq{Name: "Juan", DocumentNumber: "1"}, Rooms: []string{"101"}, CheckIn: "2025-12-15", CheckOut: "2025-12-20"}
	if err := v.Validate(ok); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}
