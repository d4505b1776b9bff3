package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type RoomCategory string

const (
	CategoryStandard RoomCategory = "standard"
	CategoryDeluxe   RoomCategory = "deluxe"
	CategorySuite    RoomCategory = "suite"
)

// CategoryInfo carries the fixed pricing and display data attached to a
// room category. The set is closed; categories cannot be added at runtime.
type CategoryInfo struct {
	Name          RoomCategory    `json:"name"`
	DisplayName   string          `json:"display_name"`
	Description   string          `json:"description"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
}

var categoryTable = map[RoomCategory]CategoryInfo{
	CategoryStandard: {
		Name:          CategoryStandard,
		DisplayName:   "Standard",
		Description:   "Queen bed, TV, Wi-Fi",
		PricePerNight: decimal.NewFromInt(80),
	},
	CategoryDeluxe: {
		Name:          CategoryDeluxe,
		DisplayName:   "Deluxe",
		Description:   "King bed, Mini-bar, City view",
		PricePerNight: decimal.NewFromInt(150),
	},
	CategorySuite: {
		Name:          CategorySuite,
		DisplayName:   "Suite",
		Description:   "Living area, Jacuzzi, Panoramic view",
		PricePerNight: decimal.NewFromInt(300),
	},
}

// Categories returns all room categories in ascending price order.
func Categories() []CategoryInfo {
	return []CategoryInfo{
		categoryTable[CategoryStandard],
		categoryTable[CategoryDeluxe],
		categoryTable[CategorySuite],
	}
}

func (c RoomCategory) Info() CategoryInfo {
	return categoryTable[c]
}

func (c RoomCategory) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

type Room struct {
	Number   string       `json:"number"`
	Category RoomCategory `json:"category"`
	Floor    int          `json:"floor"`

	// Available reflects current occupancy only: it is false while a
	// booking on this room is checked in. Calendar availability is a
	// separate question answered by date-range overlap against the
	// ledger.
	Available bool `json:"available"`
}

func (r *Room) PricePerNight() decimal.Decimal {
	return r.Category.Info().PricePerNight
}

// DefaultInventory is the seeded catalog: floor 1 standard (101-110),
// floor 2 deluxe (201-208), floor 3 suite (301-304).
func DefaultInventory() []*Room {
	rooms := make([]*Room, 0, 22)
	for i := 1; i <= 10; i++ {
		rooms = append(rooms, &Room{Number: fmt.Sprintf("1%02d", i), Category: CategoryStandard, Floor: 1, Available: true})
	}
	for i := 1; i <= 8; i++ {
		rooms = append(rooms, &Room{Number: fmt.Sprintf("2%02d", i), Category: CategoryDeluxe, Floor: 2, Available: true})
	}
	for i := 1; i <= 4; i++ {
		rooms = append(rooms, &Room{Number: fmt.Sprintf("3%02d", i), Category: CategorySuite, Floor: 3, Available: true})
	}
	return rooms
}
