package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/booking"
)

// statusFor maps coordinator errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, booking.ErrInvalidRange),
		errors.Is(err, booking.ErrRoomNotFound),
		errors.Is(err, booking.ErrNoRooms),
		errors.Is(err, booking.ErrNoPaymentMethod):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrRoomUnavailable),
		errors.Is(err, booking.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, booking.ErrPaymentFailed):
		return http.StatusPaymentRequired
	case errors.Is(err, booking.ErrReservationNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// bookingError writes err as a JSON error body.  Room-level errors also
// carry the offending room number.
func bookingError(c echo.Context, log *slog.Logger, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("[handler] unexpected booking error", "path", c.Path(), "err", err)
		return c.JSON(status, echo.Map{"error": "internal error"})
	}
	body := echo.Map{"error": err.Error()}
	var re *booking.RoomError
	if errors.As(err, &re) {
		body["room"] = re.Number
	}
	return c.JSON(status, body)
}
