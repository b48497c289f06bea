package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/reserva/internal/domain"
	"github.com/Gunvolt24/reserva/internal/kafka/mocks"
	"github.com/Gunvolt24/reserva/pkg/ctxmeta"
	"github.com/Gunvolt24/reserva/pkg/metrics"
)

func newTestProducer(w writer) *Producer {
	return &Producer{writer: w, topic: "reservation-status-test", log: nopLogger{}}
}

func confirmedEvent() *domain.StatusChangedEvent {
	return &domain.StatusChangedEvent{
		EventType:     domain.EventTypeStatusChanged,
		ReservationID: 42,
		ClientID:      7,
		StoreID:       3,
		Status:        domain.StatusConfirmed,
		ChangedAt:     time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPublish_KeyedByReservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)
	p := newTestProducer(w)

	before := testutil.ToFloat64(metrics.KafkaMessagesPublished.WithLabelValues(p.topic, "ok"))

	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			require.Equal(t, "42", string(msgs[0].Key))

			var got domain.StatusChangedEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
			require.Equal(t, int64(7), got.ClientID)
			require.Equal(t, domain.StatusConfirmed, got.Status)

			headers := map[string]string{}
			for _, h := range msgs[0].Headers {
				headers[h.Key] = string(h.Value)
			}
			require.Equal(t, domain.EventTypeStatusChanged, headers["event_type"])
			require.Equal(t, "req-9", headers["request_id"])
			return nil
		})

	ctx := ctxmeta.WithRequestID(context.Background(), "req-9")
	require.NoError(t, p.PublishStatusChanged(ctx, confirmedEvent()))
	require.Equal(t, before+1, testutil.ToFloat64(metrics.KafkaMessagesPublished.WithLabelValues(p.topic, "ok")))
}

func TestPublish_FillsEventType(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)
	p := newTestProducer(w)

	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	ev := confirmedEvent()
	ev.EventType = ""
	require.NoError(t, p.PublishStatusChanged(context.Background(), ev))
	require.Equal(t, domain.EventTypeStatusChanged, ev.EventType)
}

func TestPublish_InvalidEventNotWritten(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)
	p := newTestProducer(w)

	ev := confirmedEvent()
	ev.ReservationID = 0
	require.ErrorIs(t, p.PublishStatusChanged(context.Background(), ev), domain.ErrInvalidEvent)
	require.ErrorIs(t, p.PublishStatusChanged(context.Background(), nil), domain.ErrInvalidEvent)
}

func TestPublish_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)
	p := newTestProducer(w)

	before := testutil.ToFloat64(metrics.KafkaMessagesPublished.WithLabelValues(p.topic, "error"))
	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("leader not available"))

	err := p.PublishStatusChanged(context.Background(), confirmedEvent())
	require.Error(t, err)
	require.Contains(t, err.Error(), "reservation_id=42")
	require.Equal(t, before+1, testutil.ToFloat64(metrics.KafkaMessagesPublished.WithLabelValues(p.topic, "error")))
}

func TestProducerClose_Once(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)
	p := newTestProducer(w)

	w.EXPECT().Close().Return(nil).Times(1)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
}

func TestProducerConfig_Writer(t *testing.T) {
	cfg := ProducerConfig{Brokers: []string{"k1:9092"}, Topic: "reservation-status"}
	w := cfg.Writer()

	require.Equal(t, "reservation-status", w.Topic)
	require.Equal(t, kafka.RequireAll, w.RequiredAcks)
	require.Equal(t, 10*time.Second, w.WriteTimeout)
	require.IsType(t, &kafka.Hash{}, w.Balancer)
}
