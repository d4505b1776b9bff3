package reservation

import (
	"github.com/shopspring/decimal"

	"hotelreserve/internal/domain"
)

type CreateReservationRequest struct {
	GuestName     string `json:"guest_name" binding:"required" validate:"required"`
	GuestPhone    string `json:"guest_phone" validate:"omitempty,min=5"`
	GuestEmail    string `json:"guest_email" validate:"omitempty,email"`
	CheckIn       string `json:"check_in" binding:"required" validate:"required"`
	CheckOut      string `json:"check_out" binding:"required" validate:"required"`
	RoomNumber    string `json:"room_number" binding:"required" validate:"required"`
	PaymentMethod string `json:"payment_method" binding:"required" validate:"required,oneof=card cash online"`
}

// RoomOffer is one availability search hit: a free room with its
// nightly rate and the total for the requested stay.
type RoomOffer struct {
	Room      *domain.Room    `json:"room"`
	Nights    int64           `json:"nights"`
	Rate      decimal.Decimal `json:"rate_per_night"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// Summary aggregates the ledger for reporting. Revenue excludes
// cancelled bookings but keeps checked-out ones.
type Summary struct {
	Total     int             `json:"total"`
	Confirmed int             `json:"confirmed"`
	CheckedIn int             `json:"checked_in"`
	Cancelled int             `json:"cancelled"`
	Revenue   decimal.Decimal `json:"revenue"`
}
