package repository

import "hotelreserve/internal/domain"

// RoomRepository holds the fixed room inventory. It is seeded once at
// startup and never grows; the only mutable state on a room is its
// occupancy flag, toggled by the reservation service.
type RoomRepository struct {
	byNumber map[string]*domain.Room
	ordered  []*domain.Room
}

func NewRoomRepository(rooms []*domain.Room) *RoomRepository {
	r := &RoomRepository{byNumber: make(map[string]*domain.Room, len(rooms))}
	for _, room := range rooms {
		if _, exists := r.byNumber[room.Number]; exists {
			continue
		}
		r.byNumber[room.Number] = room
		r.ordered = append(r.ordered, room)
	}
	return r
}

func (r *RoomRepository) FindByNumber(number string) (*domain.Room, bool) {
	room, ok := r.byNumber[number]
	return room, ok
}

// All returns rooms in insertion order.
func (r *RoomRepository) All() []*domain.Room {
	out := make([]*domain.Room, len(r.ordered))
	copy(out, r.ordered)
	return out
}
