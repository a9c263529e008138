package httpapi

import (
	"sync"
	"time"

	"github.com/krotik/pingcollector/internal/domain"
)

// StatusBoard keeps the collector's running tallies and the most recent
// record for the status API. It observes the prober and is safe for
// concurrent reads from HTTP handlers.
type StatusBoard struct {
	mu          sync.RWMutex
	target      string
	startedAt   time.Time
	last        *domain.PingResult
	cycles      int64
	successes   int64
	failures    int64
	storeErrors int64
}

func NewStatusBoard(target string) *StatusBoard {
	return &StatusBoard{
		target:    target,
		startedAt: time.Now().UTC(),
	}
}

func (b *StatusBoard) Observe(r *domain.PingResult) {
	b.mu.Lock()
	defer b.mu.Unlock()
	cp := *r
	b.last = &cp
	b.cycles++
	if r.Success {
		b.successes++
	} else {
		b.failures++
	}
}

func (b *StatusBoard) SubmissionFailed() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.storeErrors++
}

type Snapshot struct {
	Target      string             `json:"target"`
	StartedAt   time.Time          `json:"started_at"`
	Cycles      int64              `json:"cycles"`
	Successes   int64              `json:"successes"`
	Failures    int64              `json:"failures"`
	StoreErrors int64              `json:"store_errors"`
	Last        *domain.PingResult `json:"last,omitempty"`
}

func (b *StatusBoard) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s := Snapshot{
		Target:      b.target,
		StartedAt:   b.startedAt,
		Cycles:      b.cycles,
		Successes:   b.successes,
		Failures:    b.failures,
		StoreErrors: b.storeErrors,
	}
	if b.last != nil {
		cp := *b.last
		s.Last = &cp
	}
	return s
}
