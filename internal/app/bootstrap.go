package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/reserva/config"
	"github.com/Gunvolt24/reserva/internal/ports"
	"github.com/Gunvolt24/reserva/pkg/logger"
	"github.com/Gunvolt24/reserva/pkg/metrics"
	"github.com/Gunvolt24/reserva/pkg/telemetry"
)

// App — собранный сервис и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	KafkaConsumer   ports.MessageConsumer // консьюмер событий статуса; nil — не запускается
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// base — общая часть обоих сервисов: логгер, метрики, трейсинг.
type base struct {
	log             *logger.ZapLogger
	otelServiceName string // пусто, если трейсинг выключен
	shutdown        func()
}

func setupBase(ctx context.Context, cfg *config.Config, serviceName string) (*base, error) {
	// Логгер (dev/prod режим и уровень задаются конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLoggerWithLevel(cfg.Logger.IsProd, cfg.Logger.Level)
	if err != nil {
		return nil, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		name := cfg.Tracing.ServiceName + "-" + serviceName
		setup, tErr := telemetry.SetupTracing(ctx, name, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				name, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
			otelServiceName = name
		}
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	return &base{
		log:             logg,
		otelServiceName: otelServiceName,
		shutdown: func() {
			if err := shutdownTrace(context.Background()); err != nil {
				logg.Warnf(ctx, "shutdown tracing: %v", err)
			}
			if err := cleanupLogger(); err != nil {
				logg.Warnf(ctx, "cleanup logger: %v", err)
			}
		},
	}, nil
}

func newHTTPServer(cfg *config.HTTP, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// defaultGracefulTimeout — если в конфигурации не задано.
const defaultGracefulTimeout = 5 * time.Second

// Run — запускает HTTP-сервер и консьюмера, ждёт отмены контекста или падения
// одного из них и останавливает оба. Отмена контекста — штатный выход (nil);
// фоновая ошибка (например, занятый порт) возвращается после остановки.
func (a *App) Run(ctx context.Context) error {
	failures := make(chan error, 2)
	a.startConsumer(ctx, failures)
	a.startHTTP(ctx, failures)

	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested")
	case err := <-failures:
		if isCancellation(err) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Errorf(ctx, "background component failed: %v", err)
			runErr = err
		}
	}

	a.stop(ctx)
	return runErr
}

func (a *App) startConsumer(ctx context.Context, failures chan<- error) {
	if a.KafkaConsumer == nil {
		return
	}
	go func() {
		a.Logger.Infof(ctx, "kafka consumer starting")
		if err := a.KafkaConsumer.Run(ctx); err != nil {
			failures <- fmt.Errorf("kafka consumer: %w", err)
		}
	}()
}

func (a *App) startHTTP(ctx context.Context, failures chan<- error) {
	go func() {
		a.Logger.Infof(ctx, "http server listening addr=%s", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failures <- fmt.Errorf("http server: %w", err)
		}
	}()
}

// stop — graceful shutdown HTTP (в пределах gracefulTimeout), затем закрытие консьюмера.
func (a *App) stop(ctx context.Context) {
	timeout := a.gracefulTimeout
	if timeout <= 0 {
		timeout = defaultGracefulTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped")
	}

	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close: %v", err)
		}
	}
	a.Logger.Infof(ctx, "service stopped")
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
