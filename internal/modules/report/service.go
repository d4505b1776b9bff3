package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"hotelreserve/internal/domain"
)

// LedgerReader exposes the bookings the report iterates.
type LedgerReader interface {
	All() []*domain.Booking
}

type Service struct {
	ledger LedgerReader
}

func NewService(ledger LedgerReader) *Service {
	return &Service{ledger: ledger}
}

var headers = []string{
	"BookingID", "Guest", "Phone", "Email", "Room", "Category",
	"CheckIn", "CheckOut", "Nights", "RatePerNight", "TotalCost",
	"Status", "PaymentMethod", "PaymentOk",
}

// Export renders the full ledger as a single-sheet workbook. The xlsx
// is a one-way report for the front desk; the CSV store remains the
// only persistence format.
func (s *Service) Export(ctx context.Context) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Bookings"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for i, b := range s.ledger.All() {
		method, paid := "", ""
		if b.Payment != nil {
			method = string(b.Payment.Method)
			paid = fmt.Sprintf("%t", b.Payment.Successful)
		}
		values := []interface{}{
			b.ID, b.Guest.Name, b.Guest.Phone, b.Guest.Email,
			b.Room.Number, b.Room.Category.Info().DisplayName,
			b.CheckIn.Format(domain.DateLayout), b.CheckOut.Format(domain.DateLayout),
			b.Nights(),
			b.Room.PricePerNight().InexactFloat64(), b.TotalCost().InexactFloat64(),
			string(b.Status), method, paid,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("write booking %s: %w", b.ID, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	return buf, nil
}
