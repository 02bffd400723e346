// Package booking is the reservation and inventory coordinator: it owns the
// room catalog and the reservations, drives the reservation state machine
// and answers the reporting queries.
//
// The errors below are sentinels.  Operations wrap them with context, so
// callers should compare with errors.Is.  The HTTP layer maps each one to a
// status code.
package booking

import "errors"

// ErrInvalidRange is returned when check-in is not strictly before check-out.
var ErrInvalidRange = errors.New("check-in must be before check-out")

// ErrRoomUnavailable is returned when a requested room is occupied at
// creation or confirmation time.
var ErrRoomUnavailable = errors.New("room unavailable")

// ErrInvalidState is returned when a transition is not allowed from the
// reservation's current status.
var ErrInvalidState = errors.New("invalid reservation state")

// ErrPaymentFailed is returned when the payment method declines the charge.
// The reservation keeps its PENDING status and its rooms are released.
var ErrPaymentFailed = errors.New("payment failed")

// ErrReservationNotFound is returned for an unknown reservation id.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrRoomNotFound is returned when a room number is not in the catalog.
var ErrRoomNotFound = errors.New("room not found")

// ErrNoRooms is returned when a reservation is requested without rooms.
var ErrNoRooms = errors.New("reservation needs at least one room")

// ErrNoPaymentMethod is returned when a reservation is requested without a
// payment method.
var ErrNoPaymentMethod = errors.New("payment method required")
