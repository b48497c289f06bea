package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/reserva/internal/domain"
	"github.com/Gunvolt24/reserva/internal/ports"
	"github.com/Gunvolt24/reserva/pkg/ctxmeta"
	"github.com/Gunvolt24/reserva/pkg/metrics"
)

var _ ports.StatusPublisher = (*Producer)(nil)

// writer — минимальный контракт над kafka.Writer для подмены в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer — публикует ReservationStatusChanged в топик статусов.
type Producer struct {
	writer    writer
	topic     string
	log       ports.Logger
	closeOnce sync.Once
}

func NewProducer(cfg *ProducerConfig, log ports.Logger) *Producer {
	return &Producer{writer: cfg.Writer(), topic: cfg.Topic, log: log}
}

// PublishStatusChanged — синхронная запись события; ошибку решает вызывающий.
func (p *Producer) PublishStatusChanged(ctx context.Context, event *domain.StatusChangedEvent) error {
	if event == nil {
		return fmt.Errorf("%w: event is nil", domain.ErrInvalidEvent)
	}
	if event.EventType == "" {
		event.EventType = domain.EventTypeStatusChanged
	}
	if err := event.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.ReservationID, 10)),
		Value: raw,
		Headers: []kafka.Header{
			{Key: HeaderEventType, Value: []byte(event.EventType)},
		},
	}
	if requestID, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		msg.Headers = append(msg.Headers, kafka.Header{Key: HeaderRequestID, Value: []byte(requestID)})
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.KafkaMessagesPublished.WithLabelValues(p.topic, "error").Inc()
		return fmt.Errorf("write status event reservation_id=%d: %w", event.ReservationID, err)
	}
	metrics.KafkaMessagesPublished.WithLabelValues(p.topic, "ok").Inc()
	p.log.Infof(ctx, "status event published reservation_id=%d status=%s", event.ReservationID, event.Status)
	return nil
}

// Close — сбрасывает буфер и закрывает writer.
func (p *Producer) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
