package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/booking"
)

// ReportHandler serves the management reports.
type ReportHandler struct {
	Hotel *booking.Coordinator
}

func NewReportHandler(hotel *booking.Coordinator) *ReportHandler {
	return &ReportHandler{Hotel: hotel}
}

// Revenue handles GET /v1/reports/revenue: the sum of confirmed totals.
func (h *ReportHandler) Revenue(c echo.Context) error {
	confirmed := h.Hotel.ConfirmedReservations()
	return c.JSON(http.StatusOK, echo.Map{
		"total_revenue": h.Hotel.TotalRevenue(),
		"confirmed":     len(confirmed),
	})
}

// Confirmed handles GET /v1/reports/confirmed.
func (h *ReportHandler) Confirmed(c echo.Context) error {
	items := newReservationViews(h.Hotel.ConfirmedReservations())
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}
