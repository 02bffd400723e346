package booking

import "github.com/iliyamo/hotel-reservation/internal/model"

// Catalog stores the hotel's rooms in registration order.  It is the only
// owner of room state: reservations keep room numbers and ask the catalog
// to occupy or release them.  Catalog is not safe for concurrent use; the
// Coordinator serializes access.
type Catalog struct {
	rooms []*model.Room
	index map[string]*model.Room // first registered room per number
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]*model.Room)}
}

// Add appends a room.  Duplicate numbers are accepted; lookups resolve to
// the first one registered.
func (c *Catalog) Add(r model.Room) {
	room := r
	c.rooms = append(c.rooms, &room)
	if _, ok := c.index[room.Number]; !ok {
		c.index[room.Number] = &room
	}
}

// Len returns the number of registered rooms.
func (c *Catalog) Len() int { return len(c.rooms) }

func (c *Catalog) get(number string) (*model.Room, bool) {
	r, ok := c.index[number]
	return r, ok
}

// Find returns a copy of the first room registered under number.
func (c *Catalog) Find(number string) (model.Room, bool) {
	r, ok := c.index[number]
	if !ok {
		return model.Room{}, false
	}
	return *r, true
}

// Rooms returns a copy of every room in registration order.
func (c *Catalog) Rooms() []model.Room {
	out := make([]model.Room, 0, len(c.rooms))
	for _, r := range c.rooms {
		out = append(out, *r)
	}
	return out
}

// Available returns copies of the rooms whose availability flag is set.
func (c *Catalog) Available() []model.Room {
	out := make([]model.Room, 0, len(c.rooms))
	for _, r := range c.rooms {
		if r.IsAvailable() {
			out = append(out, *r)
		}
	}
	return out
}

// resolve maps room numbers to catalog entries, failing on the first
// number that is not registered.
func (c *Catalog) resolve(numbers []string) ([]*model.Room, error) {
	rooms := make([]*model.Room, 0, len(numbers))
	for _, n := range numbers {
		r, ok := c.get(n)
		if !ok {
			return nil, &RoomError{Number: n, Err: ErrRoomNotFound}
		}
		rooms = append(rooms, r)
	}
	return rooms, nil
}

// RoomError ties a room-level failure to the room number that caused it.
type RoomError struct {
	Number string
	Err    error
}

func (e *RoomError) Error() string { return "room " + e.Number + ": " + e.Err.Error() }
func (e *RoomError) Unwrap() error { return e.Err }
