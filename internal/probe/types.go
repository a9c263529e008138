package probe

import (
	"context"
	"time"

	"github.com/krotik/pingcollector/internal/domain"
)

// Outcome is the result of a single HTTP check.
type Outcome struct {
	Success bool
	Elapsed time.Duration
	Message string // status text on success, error text on failure
}

// Checker performs a single check against a target URL.
type Checker interface {
	Check(ctx context.Context, target string) Outcome
}

// Observer sees every record the Prober builds, before submission.
// Observers run synchronously on the probe cycle.
type Observer interface {
	Observe(r *domain.PingResult)
}

// SubmissionObserver is an optional extension for observers that track
// store submission failures.
type SubmissionObserver interface {
	SubmissionFailed()
}
