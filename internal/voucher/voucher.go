// Package voucher renders the printable confirmation handed to guests.
package voucher

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/iliyamo/hotel-reservation/internal/booking"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// ErrNotConfirmed is returned for reservations that have not been paid.
var ErrNotConfirmed = errors.New("voucher: reservation is not confirmed")

// QRPayload is the text encoded in the voucher's QR code.  Front desk
// scanners split it on '|'.
func QRPayload(r booking.Reservation) string {
	return strings.Join([]string{
		"HOTEL",
		r.ID,
		r.Customer.DocumentNumber,
		r.CheckIn.Format(time.DateOnly),
		r.CheckOut.Format(time.DateOnly),
	}, "|")
}

// Render builds an A4 PDF voucher for a confirmed reservation.  rooms must
// hold the catalog entries for r.RoomNumbers; missing entries are printed
// by number only.
func Render(r booking.Reservation, rooms []model.Room, issuedAt time.Time) ([]byte, error) {
	if r.Status != model.StatusConfirmed {
		return nil, ErrNotConfirmed
	}

	qrPNG, err := qrcode.Encode(QRPayload(r), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("voucher: qr code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, "Reservation Voucher", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(120, 8, tr(fmt.Sprintf(
		"Reservation: %s\nGuest: %s\nDocument: %s\nCheck-in: %s\nCheck-out: %s\nNights: %d\nPlan: %s",
		r.ID,
		r.Customer.Name,
		r.Customer.DocumentNumber,
		r.CheckIn.Format("02 Jan 2006"),
		r.CheckOut.Format("02 Jan 2006"),
		r.Nights(),
		r.Plan,
	)), "", "L", false)

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imgOpts, 0, "")

	pdf.SetY(110)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(30, 8, "Room", "B", 0, "L", false, 0, "")
	pdf.CellFormat(80, 8, "Category", "B", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, "Rate / night", "B", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	byNumber := make(map[string]model.Room, len(rooms))
	for _, room := range rooms {
		byNumber[room.Number] = room
	}
	for _, n := range r.RoomNumbers {
		room, ok := byNumber[n]
		category, rate := "", ""
		if ok {
			category = room.Category.Description()
			rate = fmt.Sprintf("$%.2f", room.NightlyRate)
		}
		pdf.CellFormat(30, 8, n, "", 0, "L", false, 0, "")
		pdf.CellFormat(80, 8, category, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, rate, "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Total paid: $%.2f", r.Total), "T", 1, "R", false, 0, "")
	if r.Payment != nil {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, tr(r.Payment.Name()+" - "+r.Payment.Describe()), "", 1, "R", false, 0, "")
	}

	if r.Perks.Any() {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, fmt.Sprintf("Premium benefits (%.0f%% discount applied)", booking.PremiumDiscount*100), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		for _, perk := range perkLines(r.Perks) {
			pdf.CellFormat(0, 6, "- "+perk, "", 1, "L", false, 0, "")
		}
	}

	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 10, "Issued "+issuedAt.UTC().Format("02 Jan 2006 15:04 MST")+". Present this voucher at check-in.", "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("voucher: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func perkLines(p booking.Perks) []string {
	var out []string
	if p.Breakfast {
		out = append(out, "Breakfast included")
	}
	if p.RoomService24h {
		out = append(out, "24-hour room service")
	}
	if p.LoungeAccess {
		out = append(out, "VIP lounge access")
	}
	return out
}
