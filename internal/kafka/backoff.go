package kafka

import (
	"context"
	"math/rand"
	"time"
)

// backoff — экспоненциальная пауза между попытками с equal-jitter:
// половина задержки фиксирована, вторая половина случайна.
type backoff struct {
	initial time.Duration
	max     time.Duration
	current time.Duration
	rnd     *rand.Rand
}

func newBackoff(initial, maxDelay time.Duration) *backoff {
	if initial <= 0 {
		initial = time.Second
	}
	if maxDelay < initial {
		maxDelay = 30 * time.Second
		if maxDelay < initial {
			maxDelay = initial
		}
	}
	return &backoff{
		initial: initial,
		max:     maxDelay,
		current: initial,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// next — задержка для текущей попытки; следующая будет вдвое больше (не выше max).
func (b *backoff) next() time.Duration {
	d := b.jitter(b.current)
	b.current *= 2
	if b.current > b.max {
		b.current = b.max
	}
	return d
}

func (b *backoff) reset() { b.current = b.initial }

func (b *backoff) jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(b.rnd.Int63n(int64(d-half)+1))
}

// pause — ждёт d; false, если ctx отменён раньше.
func pause(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
