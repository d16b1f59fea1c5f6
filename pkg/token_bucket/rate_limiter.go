// Package token_bucket реализует лимитер запросов по алгоритму token bucket:
// Allow забирает токен, пополнение идет с постоянной скоростью до емкости.
package token_bucket

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow() bool
}

type TokenBucket struct {
	mu         sync.Mutex
	capacity   int
	tokens     int
	refillRate float64
	lastRefill time.Time
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// Allow возвращает true и списывает токен, если запрос укладывается в лимит.
func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()
	if t.tokens == 0 {
		return false
	}
	t.tokens--
	return true
}

func (t *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	added := int(elapsed * t.refillRate)
	if added == 0 {
		// Накопленное время меньше стоимости одного токена,
		// lastRefill не двигаем, чтобы не терять остаток.
		return
	}

	t.tokens += added
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}
