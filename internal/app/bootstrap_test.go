package app_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/reserva/config"
	"github.com/Gunvolt24/reserva/internal/app"
	"github.com/Gunvolt24/reserva/internal/ports/mocks"
)

// логгер-заглушка
type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// фейковый консьюмер, который ждёт отмены контекста
type fakeConsumer struct {
	runCalls   int32
	closeCalls int32
}

func (f *fakeConsumer) Run(ctx context.Context) error {
	atomic.AddInt32(&f.runCalls, 1)
	<-ctx.Done()
	return ctx.Err()
}
func (f *fakeConsumer) Close() error {
	atomic.AddInt32(&f.closeCalls, 1)
	return nil
}

func TestAppRun_GracefulShutdown(t *testing.T) {
	// HTTP-сервер на случайном свободном порту
	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	}

	fc := &fakeConsumer{}
	a := &app.App{
		Logger:        nopLogger{},
		HTTPServer:    srv,
		KafkaConsumer: fc,
	}

	// Запуск и быстрая остановка
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if atomic.LoadInt32(&fc.runCalls) == 0 {
		t.Fatalf("consumer.Run should be called")
	}
	if atomic.LoadInt32(&fc.closeCalls) == 0 {
		t.Fatalf("consumer.Close should be called")
	}
}

func TestAppRun_WithoutConsumer(t *testing.T) {
	a := &app.App{
		Logger:     nopLogger{},
		HTTPServer: &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestAppRun_ListenFailureIsReturned(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer busy.Close()

	fc := &fakeConsumer{}
	a := &app.App{
		Logger:        nopLogger{},
		HTTPServer:    &http.Server{Addr: busy.Addr().String(), Handler: http.NewServeMux()},
		KafkaConsumer: fc,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = a.Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "http server") {
		t.Fatalf("expected listen error, got %v", err)
	}
	if atomic.LoadInt32(&fc.closeCalls) == 0 {
		t.Fatalf("consumer must be closed after a failure")
	}
}

func TestAppRun_ConsumerFailureStopsService(t *testing.T) {
	ctrl := gomock.NewController(t)
	consumer := mocks.NewMockMessageConsumer(ctrl)
	gomock.InOrder(
		consumer.EXPECT().Run(gomock.Any()).Return(errors.New("group coordinator unavailable")),
		consumer.EXPECT().Close().Return(nil),
	)

	a := &app.App{
		Logger:        nopLogger{},
		HTTPServer:    &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
		KafkaConsumer: consumer,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := a.Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "kafka consumer") {
		t.Fatalf("expected consumer error, got %v", err)
	}
}

// cart-service не ходит в сеть при сборке: REST-клиент ленивый, Kafka выключена.
func TestBootstrapCartService_NoKafka(t *testing.T) {
	cfg, err := config.LoadWithPrefix("RESERVA_TEST_BOOT_CART")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.Kafka.Enabled = false
	cfg.HTTP.GinMode = "test"
	cfg.HTTP.Addr = "127.0.0.1:0"

	a, cleanup, err := app.BootstrapCartService(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	defer cleanup()

	if a.KafkaConsumer != nil {
		t.Fatalf("consumer must not be created when kafka is disabled")
	}
	if a.HTTPServer == nil || a.HTTPServer.Handler == nil {
		t.Fatalf("http server must be assembled")
	}
}

func TestBootstrapCartService_WithKafka(t *testing.T) {
	cfg, err := config.LoadWithPrefix("RESERVA_TEST_BOOT_CART_KAFKA")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.HTTP.GinMode = "test"
	cfg.Kafka.Brokers = []string{"127.0.0.1:1"}

	a, cleanup, err := app.BootstrapCartService(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	defer cleanup()

	if a.KafkaConsumer == nil {
		t.Fatalf("consumer must be created when kafka is enabled")
	}
}

// reservation-api без базы не стартует.
func TestBootstrapReservationAPI_BadDSN(t *testing.T) {
	cfg, err := config.LoadWithPrefix("RESERVA_TEST_BOOT_API")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.Postgres.DSN = "postgres://u:p@127.0.0.1:1/db?sslmode=disable&connect_timeout=1"
	cfg.Kafka.Enabled = false

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, cleanup, err := app.BootstrapReservationAPI(ctx, &cfg); err == nil {
		cleanup()
		t.Fatalf("expected error for unreachable postgres")
	}
}
