package kafka

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/reserva/internal/domain"
	"github.com/Gunvolt24/reserva/internal/kafka/mocks"
	"github.com/Gunvolt24/reserva/pkg/ctxmeta"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

var testReaderConfig = kafka.ReaderConfig{Topic: "reservation-status", GroupID: "cart-service", Brokers: []string{"b:9092"}}

func newTestConsumer(r reader, s statusApplier) *Consumer {
	return &Consumer{
		reader:         r,
		service:        s,
		log:            nopLogger{},
		processTimeout: 30 * time.Millisecond,
		fetchBackoff: &backoff{
			initial: 5 * time.Millisecond,
			max:     10 * time.Millisecond,
			current: 5 * time.Millisecond,
			rnd:     rand.New(rand.NewSource(1)),
		},
	}
}

// blockUntilCancel — второй FetchMessage ждёт остановки Run.
func blockUntilCancel(r *mocks.Mockreader) {
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		})
}

// runBriefly — Run на ~20мс, затем отмена; Run обязан вернуть context.Canceled.
func runBriefly(t *testing.T, c *Consumer) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timeout waiting for Run to stop")
	}
}

func statusMessage(offset int64, value string, headers ...kafka.Header) kafka.Message {
	return kafka.Message{Offset: offset, Key: []byte("10"), Value: []byte(value), Headers: headers}
}

func TestRun_CommitPolicy(t *testing.T) {
	tests := []struct {
		name       string
		applyErr   error
		wantCommit bool
	}{
		{"applied", nil, true},
		{"invalid event skipped", fmt.Errorf("%w: invalid json", domain.ErrInvalidEvent), true},
		{"temporary failure kept", context.DeadlineExceeded, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			r := mocks.NewMockreader(ctrl)
			s := mocks.NewMockstatusApplier(ctrl)

			r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
			r.EXPECT().FetchMessage(gomock.Any()).Return(statusMessage(1, "payload"), nil)
			s.EXPECT().ApplyStatusEvent(gomock.Any(), []byte("payload")).Return(tt.applyErr)
			if tt.wantCommit {
				r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)
			}
			blockUntilCancel(r)

			runBriefly(t, newTestConsumer(r, s))
		})
	}
}

func TestRun_ForeignEventTypeSkippedWithoutApply(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockstatusApplier(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).
		Return(statusMessage(4, "{}", kafka.Header{Key: HeaderEventType, Value: []byte("reservation.created")}), nil)
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)
	blockUntilCancel(r)

	runBriefly(t, newTestConsumer(r, s))
}

func TestRun_RequestIDHeaderReachesService(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockstatusApplier(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).Return(statusMessage(5, "payload",
		kafka.Header{Key: HeaderEventType, Value: []byte(domain.EventTypeStatusChanged)},
		kafka.Header{Key: HeaderRequestID, Value: []byte("req-42")},
	), nil)
	s.EXPECT().ApplyStatusEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []byte) error {
			rid, ok := ctxmeta.RequestIDFromContext(ctx)
			require.True(t, ok)
			require.Equal(t, "req-42", rid)
			return nil
		})
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)
	blockUntilCancel(r)

	runBriefly(t, newTestConsumer(r, s))
}

// Ошибка коммита только логируется, цикл продолжается.
func TestRun_CommitErrorIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockstatusApplier(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).Return(statusMessage(3, "ok"), nil)
	s.EXPECT().ApplyStatusEvent(gomock.Any(), []byte("ok")).Return(nil)
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(errors.New("temporary"))
	blockUntilCancel(r)

	runBriefly(t, newTestConsumer(r, s))
}

func TestRun_FetchErrorsRetriedUntilDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockstatusApplier(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, errors.New("broker error")).MinTimes(2)

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	require.ErrorIs(t, newTestConsumer(r, s).Run(ctx), context.DeadlineExceeded)
}

func TestClose_Once(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)

	r.EXPECT().Close().Return(nil).Times(1)

	c := newTestConsumer(r, mocks.NewMockstatusApplier(ctrl))
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}

func TestBackoff_DoublesUpToMaxAndResets(t *testing.T) {
	b := newBackoff(10*time.Millisecond, 40*time.Millisecond)
	b.rnd = rand.New(rand.NewSource(7))

	for _, base := range []time.Duration{10, 20, 40, 40} {
		d := b.next()
		base *= time.Millisecond
		require.GreaterOrEqual(t, d, base/2)
		require.LessOrEqual(t, d, base)
	}

	b.reset()
	require.Equal(t, 10*time.Millisecond, b.current)
}

func TestNewBackoff_Defaults(t *testing.T) {
	b := newBackoff(0, 0)
	require.Equal(t, time.Second, b.initial)
	require.Equal(t, 30*time.Second, b.max)

	b = newBackoff(time.Minute, time.Second)
	require.Equal(t, time.Minute, b.max)
}

func TestPause_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.False(t, pause(ctx, time.Hour))
	require.True(t, pause(context.Background(), time.Millisecond))
}
