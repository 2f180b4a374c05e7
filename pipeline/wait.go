package pipeline

import (
	"context"
	"time"

	"github.com/pjbackcoding/profilepulse"
)

// DefaultPollInterval is the Waiter's default query cadence.
const DefaultPollInterval = 100 * time.Millisecond

// Waiter polls the document for a selector until a node matching it exists
// or a deadline elapses. The deadline is a monotonic wall-clock comparison,
// not a fixed number of attempts, so a slow query cannot extend the wait.
type Waiter struct {
	Doc profilepulse.Document

	// Interval between queries. Defaults to DefaultPollInterval.
	Interval time.Duration
}

// Await returns the first node matching selector, querying once per tick.
// It fails with ETIMEOUT once timeout has elapsed without a match, and
// never retries past that point; the caller decides what to do. Context
// cancellation aborts the wait early.
func (w *Waiter) Await(ctx context.Context, selector string, timeout time.Duration) (profilepulse.Node, error) {
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	deadline := time.Now().Add(timeout)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		node, err := w.Doc.Query(ctx, selector)
		if err == nil {
			return node, nil
		}
		if profilepulse.ErrorCode(err) != profilepulse.ENOTFOUND {
			return nil, err
		}

		if !time.Now().Before(deadline) {
			return nil, profilepulse.Errorf(profilepulse.ETIMEOUT,
				"element %q did not appear within %s", selector, timeout)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
