package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/booking"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// RoomHandler exposes the room catalog.  Browsing is public; registering
// rooms requires a staff token.
type RoomHandler struct {
	Hotel *booking.Coordinator
	Log   *slog.Logger
}

func NewRoomHandler(hotel *booking.Coordinator, log *slog.Logger) *RoomHandler {
	if hotel == nil {
		panic("nil coordinator passed to NewRoomHandler")
	}
	return &RoomHandler{Hotel: hotel, Log: log}
}

// ListRooms handles GET /v1/rooms.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	rooms := newRoomViews(h.Hotel.Rooms())
	return c.JSON(http.StatusOK, echo.Map{"items": rooms, "count": len(rooms)})
}

// GetRoom handles GET /v1/rooms/:number.
func (h *RoomHandler) GetRoom(c echo.Context) error {
	room, ok := h.Hotel.FindRoom(c.Param("number"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": newRoomViews([]model.Room{room})[0]})
}

// AvailableRooms handles GET /v1/rooms/available?check_in=&check_out=.
// Both dates are required and must form a valid range.
func (h *RoomHandler) AvailableRooms(c echo.Context) error {
	in, err := parseDate(c.QueryParam("check_in"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in must be YYYY-MM-DD"})
	}
	out, err := parseDate(c.QueryParam("check_out"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be YYYY-MM-DD"})
	}
	if !in.Before(out) {
		return bookingError(c, h.Log, booking.ErrInvalidRange)
	}
	rooms := newRoomViews(h.Hotel.AvailableRooms(in, out))
	return c.JSON(http.StatusOK, echo.Map{
		"check_in":  in.Format("2006-01-02"),
		"check_out": out.Format("2006-01-02"),
		"nights":    booking.Nights(in, out),
		"items":     rooms,
		"count":     len(rooms),
	})
}

// Rates handles GET /v1/rates: the nightly rate card per category.
func (h *RoomHandler) Rates(c echo.Context) error {
	type rate struct {
		Category    string  `json:"category"`
		Description string  `json:"description"`
		NightlyRate float64 `json:"nightly_rate"`
	}
	cats := model.Categories()
	out := make([]rate, 0, len(cats))
	for _, cat := range cats {
		out = append(out, rate{Category: string(cat), Description: cat.Description(), NightlyRate: cat.NightlyRate()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":            out,
		"premium_discount": booking.PremiumDiscount,
	})
}

type registerRoomReq struct {
	Number   string `json:"number" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// RegisterRoom handles POST /v1/rooms.  Numbers already in the catalog are
// refused with 409.
func (h *RoomHandler) RegisterRoom(c echo.Context) error {
	var req registerRoomReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	req.Number = strings.TrimSpace(req.Number)
	cat := model.RoomCategory(strings.ToUpper(strings.TrimSpace(req.Category)))
	if req.Number == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "number required"})
	}
	if !cat.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown category", "categories": model.Categories()})
	}
	if _, exists := h.Hotel.FindRoom(req.Number); exists {
		return c.JSON(http.StatusConflict, echo.Map{"error": "room already registered"})
	}
	room := model.NewRoom(req.Number, cat)
	h.Hotel.RegisterRoom(room)
	return c.JSON(http.StatusCreated, echo.Map{"item": newRoomViews([]model.Room{room})[0]})
}
