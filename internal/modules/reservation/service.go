package reservation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/pkg/validator"
)

// Service owns the booking lifecycle: creation, cancellation, check-in,
// check-out, availability search and the ledger summary. Every mutating
// operation either fully succeeds or leaves the ledger unchanged; after
// a successful mutation the full ledger is flushed to the store. A
// single mutex serializes mutations, since every booking touches
// exactly one room there is nothing finer to lock.
type Service struct {
	mu       sync.Mutex
	rooms    RoomCatalog
	guests   GuestRegistry
	ledger   Ledger
	payments PaymentRecorder
	store    Persister
	validate *validator.CustomValidator
	log      *logrus.Logger
	now      func() time.Time
}

func NewService(rooms RoomCatalog, guests GuestRegistry, ledger Ledger, payments PaymentRecorder, store Persister, log *logrus.Logger) *Service {
	return &Service{
		rooms:    rooms,
		guests:   guests,
		ledger:   ledger,
		payments: payments,
		store:    store,
		validate: validator.New(),
		log:      log,
		now:      time.Now,
	}
}

// Search lists rooms free for the half-open range [checkIn, checkOut),
// optionally narrowed to one category. "all" and the empty string mean
// no category filter.
func (s *Service) Search(ctx context.Context, checkIn, checkOut, category string) ([]RoomOffer, error) {
	ci, co, err := parseStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	var filter domain.RoomCategory
	if category != "" && category != "all" {
		filter = domain.RoomCategory(category)
		if !filter.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	nights := int64(co.Sub(ci) / (24 * time.Hour))
	offers := make([]RoomOffer, 0)
	for _, room := range s.rooms.All() {
		if filter != "" && room.Category != filter {
			continue
		}
		if !s.ledger.CheckAvailability(room.Number, ci, co) {
			continue
		}
		rate := room.PricePerNight()
		offers = append(offers, RoomOffer{
			Room:      room,
			Nights:    nights,
			Rate:      rate,
			TotalCost: rate.Mul(decimal.NewFromInt(nights)),
		})
	}
	return offers, nil
}

// CreateReservation validates the request, records and settles the
// payment, then registers guest and booking and flushes the ledger.
// A declined settlement aborts before anything is persisted.
func (s *Service) CreateReservation(ctx context.Context, req CreateReservationRequest) (*domain.Booking, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	ci, co, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms.FindByNumber(req.RoomNumber)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, req.RoomNumber)
	}
	if !s.ledger.CheckAvailability(room.Number, ci, co) {
		return nil, fmt.Errorf("%w: room %s, %s to %s", ErrNotAvailable, room.Number, req.CheckIn, req.CheckOut)
	}

	nights := int64(co.Sub(ci) / (24 * time.Hour))
	total := room.PricePerNight().Mul(decimal.NewFromInt(nights))

	pay, err := s.payments.Record(total, domain.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.payments.Settle(ctx, pay); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	guest := s.guests.Create(req.GuestName, req.GuestPhone, req.GuestEmail)
	b := &domain.Booking{
		ID:        s.ledger.NextID(),
		Guest:     guest,
		Room:      room,
		CheckIn:   ci,
		CheckOut:  co,
		Status:    domain.BookingConfirmed,
		Payment:   pay,
		CreatedAt: s.now(),
	}
	s.ledger.Insert(b)
	s.persist()

	s.log.WithFields(logrus.Fields{
		"booking_id": b.ID,
		"room":       room.Number,
		"guest_id":   guest.ID,
		"total":      total.StringFixed(2),
	}).Info("reservation created")
	return b, nil
}

// Cancel moves a booking to cancelled and computes the refund: the full
// total when check-in is more than two days out, half otherwise. Fund
// movement itself is out of scope; the amount is reported to the caller.
func (s *Service) Cancel(ctx context.Context, bookingID string) (*domain.Booking, decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.ledger.GetByID(bookingID)
	if !ok {
		return nil, decimal.Zero, fmt.Errorf("%w: %s", ErrNotFound, bookingID)
	}
	if b.Status.Terminal() {
		return nil, decimal.Zero, fmt.Errorf("%w: booking %s is %s", ErrInvalidStatusTransition, bookingID, b.Status)
	}

	refund := b.TotalCost()
	today := domain.DateOnly(s.now())
	if !b.CheckIn.After(today.AddDate(0, 0, 2)) {
		refund = refund.Div(decimal.NewFromInt(2))
	}

	b.Status = domain.BookingCancelled
	b.Room.Available = true
	s.persist()

	s.log.WithFields(logrus.Fields{
		"booking_id": b.ID,
		"refund":     refund.StringFixed(2),
	}).Info("reservation cancelled")
	return b, refund, nil
}

// CheckIn is only legal from confirmed; it marks the room occupied.
func (s *Service) CheckIn(ctx context.Context, bookingID string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.ledger.GetByID(bookingID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, bookingID)
	}
	if b.Status != domain.BookingConfirmed {
		return nil, fmt.Errorf("%w: booking %s is %s", ErrInvalidStatusTransition, bookingID, b.Status)
	}

	b.Status = domain.BookingCheckedIn
	b.Room.Available = false
	s.persist()

	s.log.WithFields(logrus.Fields{"booking_id": b.ID, "room": b.Room.Number}).Info("guest checked in")
	return b, nil
}

// CheckOut is only legal from checked-in; it releases the room and
// reports the final cost.
func (s *Service) CheckOut(ctx context.Context, bookingID string) (*domain.Booking, decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.ledger.GetByID(bookingID)
	if !ok {
		return nil, decimal.Zero, fmt.Errorf("%w: %s", ErrNotFound, bookingID)
	}
	if b.Status != domain.BookingCheckedIn {
		return nil, decimal.Zero, fmt.Errorf("%w: booking %s is %s", ErrInvalidStatusTransition, bookingID, b.Status)
	}

	b.Status = domain.BookingCheckedOut
	b.Room.Available = true
	s.persist()

	total := b.TotalCost()
	s.log.WithFields(logrus.Fields{
		"booking_id": b.ID,
		"room":       b.Room.Number,
		"total":      total.StringFixed(2),
	}).Info("guest checked out")
	return b, total, nil
}

func (s *Service) Get(ctx context.Context, bookingID string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.ledger.GetByID(bookingID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, bookingID)
	}
	return b, nil
}

// ListAll returns every booking in insertion order, cancelled and
// checked-out included, plus the aggregate summary.
func (s *Service) ListAll(ctx context.Context) ([]*domain.Booking, Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := s.ledger.All()
	sum := Summary{Total: len(bookings), Revenue: decimal.Zero}
	for _, b := range bookings {
		switch b.Status {
		case domain.BookingConfirmed:
			sum.Confirmed++
		case domain.BookingCheckedIn:
			sum.CheckedIn++
		case domain.BookingCancelled:
			sum.Cancelled++
		}
		if b.Status != domain.BookingCancelled {
			sum.Revenue = sum.Revenue.Add(b.TotalCost())
		}
	}
	return bookings, sum, nil
}

// persist flushes the ledger after a mutation. A failing write is a
// warning, not a fatal error: the in-memory ledger stays authoritative
// and the session continues.
func (s *Service) persist() {
	if err := s.store.Save(s.ledger.All()); err != nil {
		s.log.WithError(err).Warn("could not save bookings")
	}
}

func parseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	ci, err := domain.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid check-in date %q", ErrValidation, checkIn)
	}
	co, err := domain.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid check-out date %q", ErrValidation, checkOut)
	}
	if !co.After(ci) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: check-out must be after check-in", ErrValidation)
	}
	return ci, co, nil
}
