package model

import "fmt"

// RoomCategory identifies the kind of room.  Each category carries a fixed
// nightly rate; rooms never override it.
type RoomCategory string

const (
    CategoryStandard          RoomCategory = "STANDARD"
    CategoryDouble            RoomCategory = "DOUBLE"
    CategorySuite             RoomCategory = "SUITE"
    CategoryPresidentialSuite RoomCategory = "PRESIDENTIAL_SUITE"
)

// nightly rates per category, in the hotel's single currency
var categoryRates = map[RoomCategory]float64{
    CategoryStandard:          80,
    CategoryDouble:            120,
    CategorySuite:             200,
    CategoryPresidentialSuite: 500,
}

var categoryNames = map[RoomCategory]string{
    CategoryStandard:          "Standard Room",
    CategoryDouble:            "Double Room",
    CategorySuite:             "Suite",
    CategoryPresidentialSuite: "Presidential Suite",
}

// Categories lists every room category in rate order.
func Categories() []RoomCategory {
    return []RoomCategory{CategoryStandard, CategoryDouble, CategorySuite, CategoryPresidentialSuite}
}

// Valid reports whether c is one of the known categories.
func (c RoomCategory) Valid() bool {
    _, ok := categoryRates[c]
    return ok
}

// NightlyRate returns the fixed price per night for the category.  Unknown
// categories cost nothing.
func (c RoomCategory) NightlyRate() float64 { return categoryRates[c] }

// Description returns the display name of the category.
func (c RoomCategory) Description() string {
    if n, ok := categoryNames[c]; ok {
        return n
    }
    return string(c)
}

// Room is a catalog entry.  Number is the unique identity; Available is
// the only mutable state and is flipped exclusively by the reservation
// lifecycle (occupied on confirm, released on cancel or payment rollback).
//
// Fields:
//  Number      – room number, unique within the catalog.
//  Category    – room category, fixes the nightly rate.
//  NightlyRate – price per night copied from the category.
//  Available   – false while a confirmed reservation holds the room.
type Room struct {
    Number      string       `json:"number"`
    Category    RoomCategory `json:"category"`
    NightlyRate float64      `json:"nightly_rate"`
    Available   bool         `json:"available"`
}

// NewRoom builds an available room of the given category.
func NewRoom(number string, category RoomCategory) Room {
    return Room{
        Number:      number,
        Category:    category,
        NightlyRate: category.NightlyRate(),
        Available:   true,
    }
}

func NewStandardRoom(number string) Room { return NewRoom(number, CategoryStandard) }
func NewDoubleRoom(number string) Room { return NewRoom(number, CategoryDouble) }
func NewSuite(number string) Room { return NewRoom(number, CategorySuite) }
func NewPresidentialSuite(number string) Room { return NewRoom(number, CategoryPresidentialSuite) }

// IsAvailable reports whether the room can be booked right now.
func (r *Room) IsAvailable() bool { return r.Available }

// MarkOccupied flags the room as taken.  Idempotent.
func (r *Room) MarkOccupied() { r.Available = false }

// MarkAvailable releases the room.  Idempotent.
func (r *Room) MarkAvailable() { r.Available = true }

func (r Room) String() string {
    state := "Available"
    if !r.Available {
        state = "Occupied"
    }
    return fmt.Sprintf("%s #%s (Rate: $%.2f/night) - %s", r.Category.Description(), r.Number, r.NightlyRate, state)
}
