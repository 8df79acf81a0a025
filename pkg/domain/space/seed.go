package space

import (
	"github.com/felixgeelhaar/cowork/pkg/domain/booking"
	"github.com/felixgeelhaar/cowork/pkg/domain/inventory"
)

type roomSeed struct {
	id       string
	name     string
	capacity int
}

type productSeed struct {
	id    string
	name  string
	price float64
	stock int
}

var defaultRooms = []roomSeed{
	{"S1", "Small Room", 4},
	{"S2", "Medium Room", 8},
	{"S3", "Large Room", 15},
	{"S4", "Meeting Room", 6},
	{"S5", "Private Office", 2},
}

var defaultProducts = []productSeed{
	{"P1", "Coffee", 2, 100},
	{"P2", "Tea", 1.5, 100},
	{"P3", "Water", 1, 200},
	{"P4", "Snack", 3, 50},
	{"P5", "Sandwich", 5, 30},
	{"P6", "Soda", 2.5, 80},
	{"P7", "Salad", 8, 20},
}

// SeedRooms adds the default rooms. Existing ids are skipped.
func (s *Space) SeedRooms() {
	for _, seed := range defaultRooms {
		if _, exists := s.rooms[seed.id]; exists {
			continue
		}
		room, err := booking.NewRoom(seed.id, seed.name, seed.capacity)
		if err != nil {
			continue
		}
		_ = s.AddRoom(room)
	}
}

// SeedProducts adds the default products. Existing ids are skipped.
func (s *Space) SeedProducts() {
	for _, seed := range defaultProducts {
		if _, exists := s.products[seed.id]; exists {
			continue
		}
		product, err := inventory.NewProduct(seed.id, seed.name, seed.price, seed.stock)
		if err != nil {
			continue
		}
		_ = s.AddProduct(product)
	}
}
