package reservation

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"hotelreserve/internal/domain"
)

// RoomCatalog is the fixed room inventory.
type RoomCatalog interface {
	FindByNumber(number string) (*domain.Room, bool)
	All() []*domain.Room
}

// GuestRegistry registers guests for new reservations.
type GuestRegistry interface {
	Create(name, phone, email string) *domain.Guest
}

// Ledger is the booking collection plus its conflict scan.
type Ledger interface {
	NextID() string
	Insert(b *domain.Booking)
	GetByID(id string) (*domain.Booking, bool)
	All() []*domain.Booking
	CheckAvailability(roomNumber string, checkIn, checkOut time.Time) bool
}

// PaymentRecorder creates and settles simulated payments.
type PaymentRecorder interface {
	Record(amount decimal.Decimal, method domain.PaymentMethod) (*domain.Payment, error)
	Settle(ctx context.Context, p *domain.Payment) error
}

// Persister flushes the full ledger to durable storage.
type Persister interface {
	Save(bookings []*domain.Booking) error
}
