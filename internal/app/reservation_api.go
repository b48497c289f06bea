package app

import (
	"context"

	"github.com/Gunvolt24/reserva/config"
	"github.com/Gunvolt24/reserva/internal/kafka"
	"github.com/Gunvolt24/reserva/internal/ports"
	"github.com/Gunvolt24/reserva/internal/repo/postgres"
	rest "github.com/Gunvolt24/reserva/internal/transport/http"
	"github.com/Gunvolt24/reserva/internal/usecase"
	"github.com/Gunvolt24/reserva/pkg/validate"
)

// BootstrapReservationAPI — собирает reservation-api: Postgres, продюсер событий статуса
// и REST-поверхность репозитория резервов.
func BootstrapReservationAPI(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	b, err := setupBase(ctx, cfg, "reservation-api")
	if err != nil {
		return nil, func() {}, err
	}
	logg := b.log

	// Пул подключений Postgres.
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		b.shutdown()
		return nil, func() {}, err
	}

	// Продюсер событий; без Kafka переходы статуса просто не публикуются.
	var (
		publisher ports.StatusPublisher
		producer  *kafka.Producer
	)
	if cfg.Kafka.Enabled {
		producer = kafka.NewProducer(&kafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		}, logg)
		publisher = producer
	} else {
		logg.Warnf(ctx, "kafka disabled: status events will not be published")
	}

	// Сборка зависимостей доменного слоя.
	service := usecase.NewReservationService(
		postgres.NewReservationRepository(pool),
		postgres.NewStoreDirectory(pool),
		publisher,
		validate.NewReservationValidator(),
		logg,
	)

	// Роутер и HTTP-сервер.
	handler := rest.NewReservationHandler(service, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewReservationRouter(handler, b.otelServiceName)

	a := &App{
		Logger:          logg,
		HTTPServer:      newHTTPServer(&cfg.HTTP, router),
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if producer != nil {
			if err := producer.Close(); err != nil {
				logg.Warnf(ctx, "kafka producer close error: %v", err)
			}
		}
		pool.Close()
		b.shutdown()
	}

	return a, cleanup, nil
}
