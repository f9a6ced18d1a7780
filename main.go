package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"mesa-booking/config"
	httpapi "mesa-booking/internal/api/http"
	"mesa-booking/internal/logging"
	"mesa-booking/internal/notifier"
	"mesa-booking/internal/service"
	"mesa-booking/internal/storage"
)

const bookingEventsTopic = "booking-events"

func main() {
	config.LoadEnv()

	logger := logging.New(os.Stdout, config.Logging())
	slog.SetDefault(logger)

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(bookingEventsTopic)
	defer kafkaWriter.Close()
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	menu := storage.NewCachedMenuSource(rdb, time.Minute, repo)
	qrEncoder := service.DefaultQRGenerator{BaseURL: config.PublicBaseURL()}

	availability := service.NewAvailabilityService(repo, repo)
	reservations := service.NewReservationService(repo, repo, availability, publisher)
	orders := service.NewOrderService(repo, menu, repo, repo, qrEncoder, publisher)

	kafkaReader := config.NewKafkaReader(bookingEventsTopic, "booking-notifier")
	defer kafkaReader.Close()
	occupancy := storage.NewOccupancyStore(rdb, 48*time.Hour)
	consumer := notifier.NewConsumer(kafkaReader, occupancy, logger)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(availability, reservations, orders)
	httpapi.StartServer(config.ServerAddr(), httpapi.NewRouter(handler))
}
