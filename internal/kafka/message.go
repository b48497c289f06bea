package kafka

import (
	"context"
	"errors"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/reserva/internal/domain"
	"github.com/Gunvolt24/reserva/pkg/ctxmeta"
	"github.com/Gunvolt24/reserva/pkg/metrics"
)

// Заголовки сообщений топика статусов.
const (
	HeaderEventType = "event_type"
	HeaderRequestID = "request_id"
)

type outcome int

const (
	outcomeApplied outcome = iota // событие применено (или не касается активных сессий)
	outcomeSkipped                // не наше или битое событие: коммитим и забываем
	outcomeRetry                  // временная ошибка: без коммита
)

// process — применяет одно сообщение к корзинам.
func (c *Consumer) process(ctx context.Context, topic string, msg *kafka.Message) outcome {
	ctx = messageContext(ctx, msg)

	if eventType, ok := headerValue(msg, HeaderEventType); ok && eventType != domain.EventTypeStatusChanged {
		c.log.Infof(ctx, "foreign event skipped offset=%d event_type=%s", msg.Offset, eventType)
		return outcomeSkipped
	}

	applyCtx, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.service.ApplyStatusEvent(applyCtx, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return outcomeApplied
	case errors.Is(err, domain.ErrInvalidEvent):
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "invalid status event offset=%d key=%s: %v (skipped)", msg.Offset, msg.Key, err)
		return outcomeSkipped
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "apply status event failed offset=%d key=%s: %v (no commit)", msg.Offset, msg.Key, err)
		return outcomeRetry
	}
}

// messageContext — request_id издателя попадает в логи потребителя.
func messageContext(ctx context.Context, msg *kafka.Message) context.Context {
	if requestID, ok := headerValue(msg, HeaderRequestID); ok {
		ctx = ctxmeta.WithRequestID(ctx, requestID)
	}
	return ctx
}

func headerValue(msg *kafka.Message, key string) (string, bool) {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value), len(h.Value) > 0
		}
	}
	return "", false
}
