package token_bucket

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow() bool
}

type Clock func() time.Time

type Option func(*TokenBucket)

// WithClock подменяет источник времени, нужен тестам.
func WithClock(clock Clock) Option {
	return func(t *TokenBucket) {
		t.now = clock
	}
}

// TokenBucket хранит дробный остаток токенов, поэтому медленное пополнение не теряется между вызовами.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        Clock
}

// NewTokenBucket создаёт полную корзину ёмкостью capacity, пополняемую со скоростью refillRate токенов в секунду.
func NewTokenBucket(capacity int, refillRate float64, opts ...Option) *TokenBucket {
	t := &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.lastRefill = t.now()
	return t
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

// Available возвращает целое число токенов, доступных прямо сейчас.
func (t *TokenBucket) Available() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()
	return int(t.tokens)
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}
	t.lastRefill = now

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
}
