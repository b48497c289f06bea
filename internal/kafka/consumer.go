package kafka

import (
	"context"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/reserva/internal/ports"
	"github.com/Gunvolt24/reserva/pkg/metrics"
)

var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — то, что Consumer использует от kafka.Reader.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// statusApplier — корзина, к сессиям которой применяются события статуса.
type statusApplier interface {
	ApplyStatusEvent(ctx context.Context, raw []byte) error
}

// Consumer — читает топик событий смены статуса и применяет их к корзинам.
// Оффсет коммитится после применения или пропуска события; при временной
// ошибке сообщение остаётся незакоммиченным (at-least-once).
type Consumer struct {
	reader         reader
	service        statusApplier
	log            ports.Logger
	processTimeout time.Duration
	fetchBackoff   *backoff
	closeOnce      sync.Once
}

func NewConsumer(cfg *ConsumerConfig, service statusApplier, log ports.Logger) *Consumer {
	processTimeout := cfg.ProcessTimeout
	if processTimeout <= 0 {
		processTimeout = 5 * time.Second
	}
	return &Consumer{
		reader:         kafka.NewReader(cfg.ReaderConfig()),
		service:        service,
		log:            log,
		processTimeout: processTimeout,
		fetchBackoff:   newBackoff(cfg.RetryInitial, cfg.RetryMax),
	}
}

// Run — цикл чтения до отмены ctx. Ошибки брокера повторяются с экспоненциальной паузой.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "status event consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			delay := c.fetchBackoff.next()
			c.log.Warnf(ctx, "fetch failed: %v (retry in %s)", err, delay)
			if !pause(ctx, delay) {
				return ctx.Err()
			}
			continue
		}
		c.fetchBackoff.reset()
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		switch c.process(ctx, rc.Topic, &msg) {
		case outcomeApplied, outcomeSkipped:
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, err)
			}
		case outcomeRetry:
			// сообщение перечитается после ребаланса или рестарта; короткая пауза
			// не даёт залить лог одинаковыми ошибками
			_ = pause(ctx, c.fetchBackoff.jitter(c.fetchBackoff.initial))
		}
	}
}

// Close — закрывает reader; повторный вызов ничего не делает.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
