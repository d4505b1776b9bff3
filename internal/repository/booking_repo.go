package repository

import (
	"time"

	"hotelreserve/internal/domain"
)

// BookingRepository is the authoritative in-memory ledger of all
// bookings, indexed by id and iterated in insertion order. Bookings are
// never removed; cancellation is a status change recorded by the
// reservation service.
type BookingRepository struct {
	byID    map[string]*domain.Booking
	ordered []*domain.Booking
	seq     *Sequence
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{
		byID: make(map[string]*domain.Booking),
		seq:  NewSequence("BK", 5),
	}
}

func (r *BookingRepository) NextID() string {
	return r.seq.Next()
}

// Insert stores a booking under its id. A reloaded id replaces any
// previous entry in place, which keeps a double load from duplicating
// the ledger; the counter is advanced past the id's suffix.
func (r *BookingRepository) Insert(b *domain.Booking) {
	if _, exists := r.byID[b.ID]; !exists {
		r.ordered = append(r.ordered, b)
	} else {
		for i, old := range r.ordered {
			if old.ID == b.ID {
				r.ordered[i] = b
				break
			}
		}
	}
	r.byID[b.ID] = b
	r.seq.Observe(b.ID)
}

func (r *BookingRepository) GetByID(id string) (*domain.Booking, bool) {
	b, ok := r.byID[id]
	return b, ok
}

func (r *BookingRepository) All() []*domain.Booking {
	out := make([]*domain.Booking, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// CheckAvailability reports whether the room is free for the half-open
// range [checkIn, checkOut). Only confirmed and checked-in bookings
// block; cancelled and checked-out ones never do, whatever their dates.
func (r *BookingRepository) CheckAvailability(roomNumber string, checkIn, checkOut time.Time) bool {
	for _, b := range r.ordered {
		if b.Room.Number != roomNumber {
			continue
		}
		if !b.Status.Blocking() {
			continue
		}
		if b.Overlaps(checkIn, checkOut) {
			return false
		}
	}
	return true
}
