package booking

import "github.com/iliyamo/hotel-reservation/internal/model"

// DefaultRooms is the stock catalog: three standard rooms, two doubles, two
// suites and two presidential suites.
func DefaultRooms() []model.Room {
	return []model.Room{
		model.NewStandardRoom("101"),
		model.NewStandardRoom("102"),
		model.NewStandardRoom("103"),
		model.NewDoubleRoom("201"),
		model.NewDoubleRoom("202"),
		model.NewSuite("301"),
		model.NewSuite("302"),
		model.NewPresidentialSuite("401"),
		model.NewPresidentialSuite("402"),
	}
}

// Seed registers each room in order.
func (c *Coordinator) Seed(rooms []model.Room) {
	for _, r := range rooms {
		c.RegisterRoom(r)
	}
}
