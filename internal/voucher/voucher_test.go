package voucher

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/booking"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/payment"
)

func confirmed() booking.Reservation {
	return booking.Reservation{
		ID:          "res-42",
		Customer:    model.NewCustomer("Carlos López", "carlos@email.com", "5555555555", "11223344"),
		RoomNumbers: []string{"401", "999"},
		CheckIn:     time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Payment:     payment.NewCryptocurrency("Bitcoin", "1A1z7agoat2TP3z4JwHbqjK8Fs5P5xH3Z1"),
		Status:      model.StatusConfirmed,
		Total:       2125,
		Plan:        booking.PlanPremium,
		Perks:       booking.PlanPremium.Perks(),
	}
}

func TestRenderProducesPDF(t *testing.T) {
	out, err := Render(confirmed(), []model.Room{model.NewPresidentialSuite("401")}, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output does not look like a PDF: %q", out[:min(len(out), 16)])
	}
}

func TestRenderRequiresConfirmation(t *testing.T) {
	r := confirmed()
	r.Status = model.StatusPending
	if _, err := Render(r, nil, time.Now()); !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("err = %v, want ErrNotConfirmed", err)
	}
}

func TestQRPayload(t *testing.T) {
	if got, want := QRPayload(confirmed()), "HOTEL|res-42|11223344|2026-01-10|2026-01-15"; got != want {
		t.Fatalf("QRPayload = %q, want %q", got, want)
	}
}

func TestPerkLines(t *testing.T) {
	if n := len(perkLines(booking.PlanPremium.Perks())); n != 3 {
		t.Fatalf("premium perks = %d", n)
	}
	if n := len(perkLines(booking.PlanStandard.Perks())); n != 0 {
		t.Fatalf("standard perks = %d", n)
	}
}
