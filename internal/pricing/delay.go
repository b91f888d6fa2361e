package pricing

import (
	"context"
	"time"
)

// Delay pads an estimate to emulate a network round-trip.
type Delay interface {
	Wait(ctx context.Context) error
}

// FixedDelay waits for a fixed duration or until ctx is done.
type FixedDelay time.Duration

// NoDelay returns immediately unless ctx is already done.
const NoDelay = FixedDelay(0)

func (d FixedDelay) Wait(ctx context.Context) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(time.Duration(d))
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
