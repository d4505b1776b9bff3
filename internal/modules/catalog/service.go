package catalog

import (
	"context"

	"hotelreserve/internal/domain"
)

// RoomSource is the read side of the room inventory.
type RoomSource interface {
	All() []*domain.Room
	FindByNumber(number string) (*domain.Room, bool)
}

type Service struct {
	rooms RoomSource
}

func NewService(rooms RoomSource) *Service {
	return &Service{rooms: rooms}
}

// AllRooms returns the inventory in seeded order, occupancy flag included.
func (s *Service) AllRooms(ctx context.Context) []*domain.Room {
	return s.rooms.All()
}

func (s *Service) Categories(ctx context.Context) []domain.CategoryInfo {
	return domain.Categories()
}
