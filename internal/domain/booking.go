package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition may leave this status.
func (s BookingStatus) Terminal() bool {
	return s == BookingCheckedOut || s == BookingCancelled
}

// Blocking reports whether a booking in this status occupies its room's
// calendar. Cancelled and checked-out bookings stay in the ledger for
// history but never block availability.
func (s BookingStatus) Blocking() bool {
	return s == BookingConfirmed || s == BookingCheckedIn
}

// Booking references its guest and room (both outlive any booking) and
// exclusively owns its optional payment. CheckIn and CheckOut are
// date-only values normalized to UTC midnight.
type Booking struct {
	ID        string        `json:"id"`
	Guest     *Guest        `json:"guest"`
	Room      *Room         `json:"room"`
	CheckIn   time.Time     `json:"check_in"`
	CheckOut  time.Time     `json:"check_out"`
	Status    BookingStatus `json:"status"`
	Payment   *Payment      `json:"payment,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// Nights counts whole calendar days between check-in and check-out;
// at least 1 for any valid booking.
func (b *Booking) Nights() int64 {
	return int64(b.CheckOut.Sub(b.CheckIn) / (24 * time.Hour))
}

func (b *Booking) TotalCost() decimal.Decimal {
	return b.Room.PricePerNight().Mul(decimal.NewFromInt(b.Nights()))
}

// Overlaps tests the half-open ranges [b.CheckIn, b.CheckOut) and
// [checkIn, checkOut). A check-out equal to another booking's check-in
// is not a conflict, which permits same-day turnover.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return !(!checkOut.After(b.CheckIn) || !checkIn.Before(b.CheckOut))
}
