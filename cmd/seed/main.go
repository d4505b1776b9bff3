// Command seed writes a demo bookings file by driving the reservation
// service end to end, so the generated data always matches what the API
// itself would produce.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/modules/payment"
	"hotelreserve/internal/modules/reservation"
	"hotelreserve/internal/repository"
	"hotelreserve/internal/store"
)

func main() {
	out := flag.String("out", "bookings_data.csv", "bookings file to write")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	roomRepo := repository.NewRoomRepository(domain.DefaultInventory())
	guestRepo := repository.NewGuestRepository()
	bookingRepo := repository.NewBookingRepository()
	paymentSeq := repository.NewSequence("PAY", 5)
	bookingStore := store.New(*out, log)

	paymentService := payment.NewService(paymentSeq, nil, log)
	svc := reservation.NewService(roomRepo, guestRepo, bookingRepo, paymentService, bookingStore, log)

	ctx := context.Background()
	base := time.Now().AddDate(0, 0, 7)

	requests := []reservation.CreateReservationRequest{
		{
			GuestName:     "Alice Turner",
			GuestPhone:    "+1-202-555-0101",
			GuestEmail:    "alice.turner@example.com",
			CheckIn:       base.Format(domain.DateLayout),
			CheckOut:      base.AddDate(0, 0, 3).Format(domain.DateLayout),
			RoomNumber:    "101",
			PaymentMethod: "card",
		},
		{
			GuestName:     "Bruno Keller",
			GuestPhone:    "+49-30-555-0188",
			GuestEmail:    "bruno.keller@example.com",
			CheckIn:       base.AddDate(0, 0, 3).Format(domain.DateLayout),
			CheckOut:      base.AddDate(0, 0, 5).Format(domain.DateLayout),
			RoomNumber:    "101",
			PaymentMethod: "cash",
		},
		{
			GuestName:     "Chloe Martin",
			GuestPhone:    "+33-1-5555-0133",
			GuestEmail:    "chloe.martin@example.com",
			CheckIn:       base.Format(domain.DateLayout),
			CheckOut:      base.AddDate(0, 0, 2).Format(domain.DateLayout),
			RoomNumber:    "201",
			PaymentMethod: "online",
		},
		{
			GuestName:     "Daniil Petrov",
			GuestPhone:    "+7-495-555-0177",
			GuestEmail:    "daniil.petrov@example.com",
			CheckIn:       base.AddDate(0, 0, 1).Format(domain.DateLayout),
			CheckOut:      base.AddDate(0, 0, 4).Format(domain.DateLayout),
			RoomNumber:    "301",
			PaymentMethod: "card",
		},
	}

	var last *domain.Booking
	for _, req := range requests {
		b, err := svc.CreateReservation(ctx, req)
		if err != nil {
			log.Fatalf("seed reservation for %s failed: %v", req.GuestName, err)
		}
		last = b
	}

	// Leave one cancelled booking in the file so reloads exercise the
	// full status set.
	if _, _, err := svc.Cancel(ctx, last.ID); err != nil {
		log.Fatalf("seed cancel failed: %v", err)
	}

	_, summary, _ := svc.ListAll(ctx)
	log.WithFields(logrus.Fields{
		"file":      *out,
		"bookings":  summary.Total,
		"cancelled": summary.Cancelled,
		"revenue":   summary.Revenue.StringFixed(2),
	}).Info("seed data written")
}
