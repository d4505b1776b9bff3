// Package store is the persistence adapter: it serializes the booking
// ledger to a flat comma-separated file and reconstructs ledger,
// registry and id counters from it on startup. Each row denormalizes
// everything a stand-alone reload needs, so the file round-trips
// without any other data source.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/repository"
)

var header = []string{
	"bookingId", "guestId", "guestName", "guestPhone", "guestEmail",
	"roomNumber", "checkIn", "checkOut", "status",
	"paymentId", "paymentMethod", "amount", "paymentOk",
}

type Store struct {
	path string
	log  *logrus.Logger
}

func New(path string, log *logrus.Logger) *Store {
	return &Store{path: path, log: log}
}

func (s *Store) Path() string { return s.path }

// Save rewrites the whole file: header plus one row per booking,
// cancelled and checked-out ones included. The write goes through a
// temp file in the same directory and a rename, so a crash mid-save
// never leaves a truncated ledger behind.
func (s *Store) Save(bookings []*domain.Booking) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, b := range bookings {
		if err := w.Write(record(b)); err != nil {
			tmp.Close()
			return fmt.Errorf("write booking %s: %w", b.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

func record(b *domain.Booking) []string {
	row := []string{
		b.ID,
		b.Guest.ID,
		b.Guest.Name,
		b.Guest.Phone,
		b.Guest.Email,
		b.Room.Number,
		b.CheckIn.Format(domain.DateLayout),
		b.CheckOut.Format(domain.DateLayout),
		string(b.Status),
		"", "", "", "",
	}
	if p := b.Payment; p != nil {
		row[9] = p.ID
		row[10] = string(p.Method)
		row[11] = p.Amount.StringFixed(2)
		row[12] = fmt.Sprintf("%t", p.Successful)
	}
	return row
}

// Load reads every record into the given ledger and registry and
// advances the booking, guest and payment counters past the highest
// suffix seen. A missing file is a clean first run. Malformed or short
// rows, and rows naming a room absent from the catalog, are skipped
// silently: the file is user-editable flat storage, so robustness wins
// over strictness.
func (s *Store) Load(
	rooms *repository.RoomRepository,
	guests *repository.GuestRepository,
	ledger *repository.BookingRepository,
	payments *repository.Sequence,
) error {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	loaded := 0
	rowNum := 0
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// A stray quote in one row must not take down the
				// rest of the file.
				continue
			}
			return fmt.Errorf("read %s: %w", s.path, err)
		}
		if rowNum == 1 {
			continue // header
		}
		b, ok := s.parseRow(row, rooms, guests, payments)
		if !ok {
			continue
		}
		ledger.Insert(b)
		if b.Status == domain.BookingCheckedIn {
			// The occupancy flag is part of the reloaded state.
			b.Room.Available = false
		}
		loaded++
	}
	s.log.WithFields(logrus.Fields{"file": s.path, "bookings": loaded}).Info("ledger loaded")
	return nil
}

func (s *Store) parseRow(
	row []string,
	rooms *repository.RoomRepository,
	guests *repository.GuestRepository,
	payments *repository.Sequence,
) (*domain.Booking, bool) {
	if len(row) < 13 {
		return nil, false
	}
	checkIn, err := domain.ParseDate(row[6])
	if err != nil {
		return nil, false
	}
	checkOut, err := domain.ParseDate(row[7])
	if err != nil {
		return nil, false
	}
	status := domain.BookingStatus(row[8])
	if !status.Valid() {
		return nil, false
	}
	room, ok := rooms.FindByNumber(row[5])
	if !ok {
		// Room no longer in the catalog; drop the record.
		return nil, false
	}

	guest := guests.GetOrCreate(row[1], row[2], row[3], row[4])
	b := &domain.Booking{
		ID:       row[0],
		Guest:    guest,
		Room:     room,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   status,
	}

	if row[9] != "" {
		amount, err := decimal.NewFromString(row[11])
		if err != nil {
			return nil, false
		}
		method := domain.PaymentMethod(row[10])
		if !method.Valid() {
			return nil, false
		}
		// Payments come back in their stored terminal state; no
		// re-settlement happens on reload.
		b.Payment = &domain.Payment{
			ID:         row[9],
			Amount:     amount,
			Method:     method,
			Successful: row[12] == "true",
		}
		payments.Observe(row[9])
	}
	return b, true
}
