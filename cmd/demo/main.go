// Command demo runs a scripted front-desk session against an in-memory
// hotel: it registers the default catalog, books rooms with every payment
// method, confirms, reschedules and cancels, then prints the final report.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/booking"
	"github.com/iliyamo/hotel-reservation/internal/logger"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/payment"
	"github.com/iliyamo/hotel-reservation/internal/voucher"
)

func date(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func section(title string) {
	fmt.Printf("\n%s\n%s\n", title, strings.Repeat("-", 80))
}

func main() {
	level := flag.String("log", "warn", "log level for coordinator events")
	voucherPath := flag.String("voucher", "", "write the premium reservation's voucher PDF to this path")
	flag.Parse()

	lg := logger.Setup(os.Stderr, "dev", *level)
	hotel := booking.NewCoordinator(booking.WithLogger(lg))

	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("HOTEL RESERVATION SYSTEM - front desk walkthrough")
	fmt.Println(strings.Repeat("=", 80))

	section("1. Registering rooms")
	hotel.Seed(booking.DefaultRooms())
	for _, r := range hotel.Rooms() {
		fmt.Println("  ", r)
	}

	section("2. Customers")
	juan := model.NewCustomer("Juan Pérez", "juan@email.com", "1234567890", "12345678")
	maria := model.NewCustomer("María García", "maria@email.com", "0987654321", "87654321")
	carlos := model.NewCustomer("Carlos López", "carlos@email.com", "5555555555", "55555555")
	for _, c := range []model.Customer{juan, maria, carlos} {
		fmt.Println("  ", c)
	}

	section("3. Reservations with different payment methods")
	r1 := mustCreate(hotel.CreateReservation(juan, []string{"101", "102"}, date(2025, 12, 15), date(2025, 12, 20),
		payment.NewCreditCard("4111111111111111", "Juan Pérez", "12/25", "123")))
	r2 := mustCreate(hotel.CreateReservation(maria, []string{"201"}, date(2025, 12, 18), date(2025, 12, 22),
		payment.NewDebitCard("5555555555555555", "María García", "1234")))
	r3 := mustCreate(hotel.CreateReservation(carlos, []string{"301"}, date(2025, 12, 25), date(2025, 12, 27),
		payment.NewCryptocurrency("Bitcoin", "1A1z7agoat2TP3z4JwHbqjK8Fs5P5xH3Z1")))
	r4 := mustCreate(hotel.CreateReservation(juan, []string{"103"}, date(2025, 12, 30), date(2026, 1, 5),
		payment.NewBankTransfer("12345678901234567890", "Banco Nacional", "0001")))
	for _, r := range []booking.Reservation{r1, r2, r3, r4} {
		fmt.Printf("   %s\n     paid with %s: %s\n", r, r.Payment.Name(), r.Payment.Describe())
	}

	section("4. Premium reservation")
	premium := mustCreate(hotel.CreatePremiumReservation(juan, []string{"401", "402"}, date(2026, 1, 10), date(2026, 1, 15),
		payment.NewCreditCard("4111111111111111", "Juan Pérez", "12/25", "123")))
	fmt.Println("  ", premium)
	fmt.Println("   Perks: breakfast included, 24-hour room service, VIP lounge access")

	section("5. Confirming reservations")
	for _, res := range hotel.ConfirmAll([]string{r1.ID, r2.ID, r3.ID, r4.ID, premium.ID}) {
		if res.Err != nil {
			fmt.Printf("   %s: could not confirm: %v\n", res.ID, res.Err)
			continue
		}
		fmt.Printf("   %s: %s ($%.2f)\n", res.ID, res.Reservation.Status.Description(), res.Reservation.Total)
	}

	section("6. Changing dates")
	fmt.Println("   before:", mustGet(hotel.Reservation(r1.ID)))
	if _, err := hotel.ChangeReservationDates(r1.ID, date(2025, 12, 16), date(2025, 12, 21)); err != nil {
		fmt.Println("   change failed:", err)
	}
	fmt.Println("   after: ", mustGet(hotel.Reservation(r1.ID)))

	section("7. Queries")
	fmt.Println("   Confirmed reservations:")
	for _, r := range hotel.ConfirmedReservations() {
		fmt.Println("     -", r)
	}
	fmt.Printf("   Reservations for %s:\n", juan.Name)
	for _, r := range hotel.ReservationsForCustomer(juan) {
		fmt.Println("     -", r)
	}

	section("8. Cancelling a reservation")
	fmt.Println("   cancelling", r2.ID)
	if _, err := hotel.CancelReservation(r2.ID); err != nil {
		fmt.Println("   cancel failed:", err)
	}

	section("9. Summary")
	fmt.Println("   Total reservations:    ", len(hotel.AllReservations()))
	fmt.Println("   Confirmed reservations:", len(hotel.ConfirmedReservations()))
	fmt.Printf("   Total revenue:          $%.2f\n", hotel.TotalRevenue())

	if *voucherPath != "" {
		writeVoucher(hotel, premium.ID, *voucherPath)
	}
}

func mustCreate(r booking.Reservation, err error) booking.Reservation {
	if err != nil {
		fmt.Fprintln(os.Stderr, "create reservation:", err)
		os.Exit(1)
	}
	return r
}

func mustGet(r booking.Reservation, err error) booking.Reservation { return mustCreate(r, err) }

func writeVoucher(hotel *booking.Coordinator, id, path string) {
	r := mustGet(hotel.Reservation(id))
	var rooms []model.Room
	for _, n := range r.RoomNumbers {
		if room, ok := hotel.FindRoom(n); ok {
			rooms = append(rooms, room)
		}
	}
	pdf, err := voucher.Render(r, rooms, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, "voucher:", err)
		return
	}
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "voucher:", err)
		return
	}
	fmt.Println("\n   voucher written to", path)
}
