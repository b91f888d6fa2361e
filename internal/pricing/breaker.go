package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// Breaker guards an Estimator with a circuit breaker. It never retries; a
// failed estimate is reported and the user re-submits.
type Breaker struct {
	next    Estimator
	circuit *gobreaker.CircuitBreaker
}

// NewBreaker opens the circuit after maxFailures consecutive failures and
// probes again after openTimeout.
func NewBreaker(next Estimator, maxFailures uint32, openTimeout time.Duration) *Breaker {
	if maxFailures == 0 {
		maxFailures = 5
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "estimator",
		MaxRequests: 1,
		Interval:    1 * time.Minute,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// Bad input and caller cancellation say nothing about estimator health.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrInvalidInput) ||
				errors.Is(err, context.Canceled) ||
				errors.Is(err, context.DeadlineExceeded)
		},
	})

	return &Breaker{next: next, circuit: cb}
}

func (b *Breaker) Estimate(ctx context.Context, cropType, location string, quantityTons float64) (PriceQuote, error) {
	result, err := b.circuit.Execute(func() (interface{}, error) {
		q, err := b.next.Estimate(ctx, cropType, location, quantityTons)
		if err != nil {
			return nil, err
		}
		return q, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return PriceQuote{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return PriceQuote{}, err
	}

	q, ok := result.(PriceQuote)
	if !ok {
		return PriceQuote{}, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return q, nil
}

// State reports the circuit state ("closed", "half-open" or "open").
func (b *Breaker) State() string {
	return b.circuit.State().String()
}
