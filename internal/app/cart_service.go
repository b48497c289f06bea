package app

import (
	"context"

	"github.com/Gunvolt24/reserva/config"
	cachemem "github.com/Gunvolt24/reserva/internal/cache/memory"
	"github.com/Gunvolt24/reserva/internal/kafka"
	restrepo "github.com/Gunvolt24/reserva/internal/repo/rest"
	rest "github.com/Gunvolt24/reserva/internal/transport/http"
	"github.com/Gunvolt24/reserva/internal/usecase"
	"github.com/Gunvolt24/reserva/pkg/validate"
)

// BootstrapCartService — собирает cart-service: REST-клиент репозитория резервов,
// сессии корзин в памяти, консьюмер событий статуса и HTTP API корзины.
func BootstrapCartService(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	b, err := setupBase(ctx, cfg, "cart")
	if err != nil {
		return nil, func() {}, err
	}
	logg := b.log

	// Сборка зависимостей доменного слоя.
	client := restrepo.NewClient(cfg.Repository.BaseURL, cfg.Repository.Timeout)
	cartService := usecase.NewCartService(
		restrepo.NewReservationRepository(client),
		cachemem.NewCartStore(cfg.Cache.Capacity, cfg.Cache.TTL),
		restrepo.NewStoreDirectory(client),
		validate.NewReservationValidator(),
		logg,
	)
	logg.Infof(ctx, "reservation repository base_url=%s timeout=%s", cfg.Repository.BaseURL, cfg.Repository.Timeout)

	// Роутер и HTTP-сервер.
	handler := rest.NewCartHandler(cartService, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewCartRouter(handler, b.otelServiceName)

	a := &App{
		Logger:          logg,
		HTTPServer:      newHTTPServer(&cfg.HTTP, router),
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Консьюмер событий смены статуса.
	var consumer *kafka.Consumer
	if cfg.Kafka.Enabled {
		consumer = kafka.NewConsumer(&kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			MaxWait:        cfg.Kafka.MaxWait,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}, cartService, logg)
		a.KafkaConsumer = consumer
	} else {
		logg.Warnf(ctx, "kafka disabled: vendor status changes will not reach carts")
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		}
		b.shutdown()
	}

	return a, cleanup, nil
}
