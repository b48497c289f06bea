//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/reserva/internal/cache/memory"
	"github.com/Gunvolt24/reserva/internal/domain"
	ikafka "github.com/Gunvolt24/reserva/internal/kafka"
	"github.com/Gunvolt24/reserva/internal/ports"
	pgrepo "github.com/Gunvolt24/reserva/internal/repo/postgres"
	"github.com/Gunvolt24/reserva/internal/testutil"
	"github.com/Gunvolt24/reserva/internal/usecase"
	"github.com/Gunvolt24/reserva/pkg/logger"
	"github.com/Gunvolt24/reserva/pkg/validate"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

type stack struct {
	ctx       context.Context
	brokers   []string
	topic     string
	cart      *usecase.CartService
	vendorAPI *usecase.ReservationService
	producer  *ikafka.Producer
}

// newStack — Postgres + Redpanda, сервис резервов публикует события,
// консьюмер применяет их к корзине.
func newStack(t *testing.T) *stack {
	t.Helper()

	// длинный контекст только на старт контейнеров
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartMigratedPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "reservation-status-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	// короткий контекст на сам тест
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	t.Cleanup(cancel)

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	repo := pgrepo.NewReservationRepository(pg.Pool)
	stores := pgrepo.NewStoreDirectory(pg.Pool)
	validator := validate.NewReservationValidator()

	producer := ikafka.NewProducer(&ikafka.ProducerConfig{Brokers: kf.Brokers, Topic: topic}, logg)
	t.Cleanup(func() { _ = producer.Close() })

	cart := usecase.NewCartService(repo, cachemem.NewCartStore(100, time.Minute), stores, validator, logg)
	vendorAPI := usecase.NewReservationService(repo, stores, producer, validator, logg)

	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 5 * time.Second,
		RetryInitial:   200 * time.Millisecond,
		RetryMax:       2 * time.Second,
	}, cart, logg)
	t.Cleanup(func() { _ = consumer.Close() })

	runCtx, cancelRun := context.WithCancel(ctx)
	t.Cleanup(cancelRun)
	go func() { _ = consumer.Run(runCtx) }()

	// даём консьюмеру присоединиться к группе/получить assignment
	time.Sleep(1500 * time.Millisecond)

	return &stack{ctx: ctx, brokers: kf.Brokers, topic: topic, cart: cart, vendorAPI: vendorAPI, producer: producer}
}

// submitted — клиент собрал корзину и отправил её магазину.
func (s *stack) submitted(t *testing.T) (clientID int64, reservation *domain.Reservation) {
	t.Helper()
	clientID = testutil.NextClientID()
	s.cart.StartSession(s.ctx, clientID)

	product := &domain.Product{ID: 900, Name: "Zapatillas", Price: decimal.RequireFromString("59.00")}
	active, err := s.cart.AddOrUpdateItem(s.ctx, clientID, testutil.StoreCentro, product, 2)
	require.NoError(t, err)
	require.NotNil(t, active.Reservation)

	reservation, err = s.cart.ConfirmReservation(s.ctx, clientID, active.Reservation.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusRequested, reservation.Status)
	return clientID, reservation
}

func waitHistoryStatus(t *testing.T, cart ports.CartService, ctx context.Context, clientID, reservationID int64, want domain.Status) {
	t.Helper()
	deadline := time.Now().Add(20 * time.Second)
	for {
		view := cart.View(ctx, clientID)
		for _, r := range view.History {
			if r.ID == reservationID && r.Status.Is(want) {
				return
			}
		}
		if time.Now().After(deadline) {
			t.Fatalf("reservation %d did not reach %s in time: %+v", reservationID, want, view.History)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// 1) Магазин подтверждает резерв → событие доходит до корзины клиента
func TestKafka_VendorConfirm_ReachesCart_TC(t *testing.T) {
	s := newStack(t)
	clientID, reservation := s.submitted(t)

	vendor := ports.Caller{StoreID: testutil.StoreCentro}
	confirmed, err := s.vendorAPI.ChangeStatus(s.ctx, vendor, reservation.ID, &domain.StatusUpdate{Status: domain.StatusConfirmed})
	require.NoError(t, err)
	require.Equal(t, domain.StatusConfirmed, confirmed.Status)

	waitHistoryStatus(t, s.cart, s.ctx, clientID, reservation.ID, domain.StatusConfirmed)

	view := s.cart.View(s.ctx, clientID)
	require.Len(t, view.History, 1)
	require.Len(t, view.History[0].Items, 1)
	require.Equal(t, 2, view.History[0].Items[0].Quantity)
}

// 2) Не-JSON сообщение пропускается, валидное событие после него применяется
func TestKafka_Skip_InvalidJSON_Then_Apply_TC(t *testing.T) {
	s := newStack(t)
	clientID, reservation := s.submitted(t)

	w := &kafka.Writer{
		Addr:         kafka.TCP(s.brokers...),
		Topic:        s.topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.Hash{},
	}
	defer w.Close()

	event := domain.StatusChangedEvent{
		EventType:     domain.EventTypeStatusChanged,
		ReservationID: reservation.ID,
		ClientID:      clientID,
		Status:        domain.StatusCancelled,
		ChangedAt:     time.Now().UTC(),
	}
	raw, err := json.Marshal(event)
	require.NoError(t, err)

	// один ключ — одна партиция: мусор гарантированно стоит перед валидным событием
	key := []byte(strconv.FormatInt(reservation.ID, 10))
	require.NoError(t, w.WriteMessages(s.ctx,
		kafka.Message{Key: key, Value: []byte("{not json")},
		kafka.Message{Key: key, Value: []byte(`{"event_type":"reservation.status_changed","reservation_id":1}`)},
		kafka.Message{Key: key, Value: raw},
	))

	waitHistoryStatus(t, s.cart, s.ctx, clientID, reservation.ID, domain.StatusCancelled)
}

// 3) Событие по клиенту без сессии — no-op и коммит, очередь не стопорится
func TestKafka_UnknownSession_Ignored_TC(t *testing.T) {
	s := newStack(t)

	stranger := &domain.StatusChangedEvent{
		ReservationID: 999999,
		ClientID:      testutil.NextClientID(),
		Status:        domain.StatusConfirmed,
		ChangedAt:     time.Now().UTC(),
	}
	require.NoError(t, s.producer.PublishStatusChanged(s.ctx, stranger))

	clientID, reservation := s.submitted(t)
	vendor := ports.Caller{StoreID: testutil.StoreCentro}
	_, err := s.vendorAPI.ChangeStatus(s.ctx, vendor, reservation.ID, &domain.StatusUpdate{Status: domain.StatusCancelled})
	require.NoError(t, err)

	waitHistoryStatus(t, s.cart, s.ctx, clientID, reservation.ID, domain.StatusCancelled)
}
