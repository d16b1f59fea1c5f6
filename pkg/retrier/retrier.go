package retrier

import (
	"context"
	"time"
)

// Retrier повторяет fn до успеха либо исчерпания политики.
type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// nil означает "ретраить любую ошибку".
	ShouldRetry ShouldRetryFunc
}
