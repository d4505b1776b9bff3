package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"hotelreserve/internal/config"
	"hotelreserve/internal/domain"
	"hotelreserve/internal/modules/catalog"
	"hotelreserve/internal/modules/payment"
	"hotelreserve/internal/modules/report"
	"hotelreserve/internal/modules/reservation"
	"hotelreserve/internal/repository"
	"hotelreserve/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	log := newLogger(cfg)

	roomRepo := repository.NewRoomRepository(domain.DefaultInventory())
	guestRepo := repository.NewGuestRepository()
	bookingRepo := repository.NewBookingRepository()
	paymentSeq := repository.NewSequence("PAY", 5)

	bookingStore := store.New(cfg.Store.BookingsFile, log)
	if err := bookingStore.Load(roomRepo, guestRepo, bookingRepo, paymentSeq); err != nil {
		// The file is rebuilt on the next save; start with an empty ledger.
		log.WithError(err).Warn("could not load bookings")
	}

	paymentService := payment.NewService(paymentSeq, nil, log)
	reservationService := reservation.NewService(roomRepo, guestRepo, bookingRepo, paymentService, bookingStore, log)
	reservationHandler := reservation.NewHandler(reservationService)
	catalogHandler := catalog.NewHandler(catalog.NewService(roomRepo))
	reportHandler := report.NewHandler(report.NewService(bookingRepo))

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		catalogHandler.RegisterRoutes(v1)
		reservationHandler.RegisterRoutes(v1)
		reportHandler.RegisterRoutes(v1)
	}

	log.WithField("addr", cfg.App.Addr).Info("starting reservation API")
	if err := r.Run(cfg.App.Addr); err != nil {
		log.Fatal(err)
	}
}

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
