// Package metrics — Prometheus-метрики сервисов reserva (общий реестр для cart-service и reservation-api).
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "reserva"

// Kafka: события смены статуса.
var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "kafka",
		Name:      "messages_consumed_total",
		Help:      "Status events fetched from Kafka",
	}, []string{"topic"})

	KafkaMessagesProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "kafka",
		Name:      "messages_processed_total",
		Help:      "Status events applied to cart sessions",
	}, []string{"topic"})

	KafkaMessagesFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "kafka",
		Name:      "messages_failed_total",
		Help:      "Status events that were skipped or left for redelivery",
	}, []string{"topic"})

	// KafkaMessagesPublished — result: ok|error.
	KafkaMessagesPublished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "kafka",
		Name:      "messages_published_total",
		Help:      "Status events written to Kafka",
	}, []string{"topic", "result"})
)

// Сессии корзин в памяти.
var (
	// CacheOps — op: hit|miss|evicted|expired|init|teardown.
	CacheOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cart_cache",
		Name:      "operations_total",
		Help:      "Cart session cache operations",
	}, []string{"op"})

	CacheSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "cart_cache",
		Name:      "sessions",
		Help:      "Cart sessions currently held in memory",
	})
)

// Корзина и репозиторий резервов.
var (
	// CartOperations — result: ok|error|stale|noop|dropped.
	CartOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_operations_total",
		Help:      "Cart synchronizer operations by result",
	}, []string{"op", "result"})

	RemoteCallDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "remote_call_duration_seconds",
		Help:      "Latency of reservation repository calls",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})

	StaleResults = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stale_results_total",
		Help:      "Snapshots discarded because a newer result was already applied",
	})

	PendingAnomalies = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pending_anomalies_total",
		Help:      "Clients observed with more than one PENDING reservation",
	})

	StatusTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Applied reservation status transitions",
	}, []string{"status"})
)

// HTTPRequestDuration — длительность обработки входящих HTTP-запросов по маршруту.
var HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "Latency of inbound HTTP requests",
	Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
}, []string{"method", "route", "code"})

var registerOnce sync.Once

// MustRegister — регистрирует метрики в глобальном реестре; повторные вызовы игнорируются.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed, KafkaMessagesPublished,
			CacheOps, CacheSize,
			CartOperations, RemoteCallDuration, StaleResults, PendingAnomalies, StatusTransitions,
			HTTPRequestDuration,
		)
	})
}
