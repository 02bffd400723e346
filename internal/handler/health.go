package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-reservation/internal/booking"
)

// Health is a health-check endpoint used by load balancers and monitoring
// systems.  Besides "ok" it reports the size of the room catalog so an
// instance that started without seeding is easy to spot.
func Health(hotel *booking.Coordinator) echo.HandlerFunc {
    return func(c echo.Context) error {
        return c.JSON(http.StatusOK, echo.Map{
            "status": "ok",
            "rooms":  len(hotel.Rooms()),
        })
    }
}
