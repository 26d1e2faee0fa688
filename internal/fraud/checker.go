// Package fraud decides whether a click is legitimate. The production
// checker simulates an external validation call: a fixed delay followed by
// a random verdict. The Checker interface exists so tests can substitute a
// deterministic stub without sleeping.
package fraud

import (
	"context"
	"math/rand"
	"time"
)

// DefaultDelay is the simulated latency of one validation call.
const DefaultDelay = 100 * time.Millisecond

// invalidOutcomes out of totalOutcomes clicks are flagged fraudulent.
const (
	totalOutcomes   = 10
	invalidOutcomes = 1
)

// Checker validates a single click.
type Checker interface {
	// Validate returns true when the click is legitimate. It blocks for
	// the duration of the check; if ctx is cancelled first it returns
	// ctx.Err() rather than a verdict.
	Validate(ctx context.Context) (bool, error)
}

// SimulatedChecker models an external synchronous fraud-detection step:
// every call waits a fixed delay, then marks roughly one in ten clicks
// invalid using a uniform random draw. It holds no state between calls and
// is safe for concurrent use.
type SimulatedChecker struct {
	delay time.Duration
}

var _ Checker = (*SimulatedChecker)(nil)

// NewSimulatedChecker creates a checker with the given simulated latency.
// A negative delay is treated as zero.
func NewSimulatedChecker(delay time.Duration) *SimulatedChecker {
	if delay < 0 {
		delay = 0
	}
	return &SimulatedChecker{delay: delay}
}

// Validate waits the configured delay and returns false for one of ten
// uniform outcomes. Cancellation during the delay propagates to the caller.
func (c *SimulatedChecker) Validate(ctx context.Context) (bool, error) {
	if c.delay > 0 {
		timer := time.NewTimer(c.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-timer.C:
		}
	}
	return rand.Intn(totalOutcomes) >= invalidOutcomes, nil
}
