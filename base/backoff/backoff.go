package backoff

import (
	"context"
	"time"
)

// Strategy returns the wait before attempt n (0-based) given the base step
type Strategy func(attempt int, step time.Duration) time.Duration

// Exponential doubles the wait on each attempt
func Exponential(attempt int, step time.Duration) time.Duration {
	if attempt > 30 {
		attempt = 30
	}
	return step << uint(attempt)
}

// Linear grows the wait by one step per attempt
func Linear(attempt int, step time.Duration) time.Duration {
	return time.Duration(attempt+1) * step
}

type Backoff struct {
	strategy Strategy
	step     time.Duration
	limit    time.Duration
	attempt  int
}

func New(strategy Strategy, step, limit time.Duration) *Backoff {
	return &Backoff{strategy: strategy, step: step, limit: limit}
}

func NewExponential(step, limit time.Duration) *Backoff {
	return New(Exponential, step, limit)
}

func NewLinear(step, limit time.Duration) *Backoff {
	return New(Linear, step, limit)
}

// Next is the wait the following Backoff call will sleep
func (b *Backoff) Next() time.Duration {
	d := b.strategy(b.attempt, b.step)
	if b.limit > 0 && d > b.limit {
		d = b.limit
	}
	return d
}

func (b *Backoff) Attempts() int {
	return b.attempt
}

func (b *Backoff) Reset() {
	b.attempt = 0
}

// Backoff sleeps for Next() or until ctx is done, in which case ctx.Err() is returned
func (b *Backoff) Backoff(ctx context.Context) error {
	t := time.NewTimer(b.Next())
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		b.attempt++
		return nil
	}
}
