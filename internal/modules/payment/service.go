package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/repository"
)

// Processor stands in for the external settlement call. There is no real
// gateway; the default processor confirms every payment.
type Processor func(ctx context.Context, p *domain.Payment) error

type Service struct {
	seq     *repository.Sequence
	process Processor
	log     *logrus.Logger
	now     func() time.Time
}

func NewService(seq *repository.Sequence, process Processor, log *logrus.Logger) *Service {
	if process == nil {
		process = func(context.Context, *domain.Payment) error { return nil }
	}
	return &Service{
		seq:     seq,
		process: process,
		log:     log,
		now:     time.Now,
	}
}

// Record creates a pending payment. Callers must not treat it as a
// completed transaction until Settle has succeeded.
func (s *Service) Record(amount decimal.Decimal, method domain.PaymentMethod) (*domain.Payment, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, method)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	return &domain.Payment{
		ID:     s.seq.Next(),
		Amount: amount,
		Method: method,
		PaidAt: s.now(),
	}, nil
}

// Settle runs the simulated external confirmation and marks the payment
// successful. On failure the payment stays pending.
func (s *Service) Settle(ctx context.Context, p *domain.Payment) error {
	if err := s.process(ctx, p); err != nil {
		s.log.WithFields(logrus.Fields{"payment_id": p.ID, "method": p.Method}).
			WithError(err).Warn("payment settlement failed")
		return fmt.Errorf("%w: %v", ErrDeclined, err)
	}
	p.Successful = true
	s.log.WithFields(logrus.Fields{
		"payment_id": p.ID,
		"method":     p.Method,
		"amount":     p.Amount.StringFixed(2),
	}).Info("payment settled")
	return nil
}
