package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/krotik/pingcollector/internal/domain"
)

// StateAlerter watches the stream of probe records and notifies when the
// target's reachability flips. Only transitions alert; a target that
// stays down produces one notification, not one per tick. A quick
// down-up-down flap inside the cooldown window is suppressed, recovery
// alerts bypass it.
type StateAlerter struct {
	Logger          *zap.Logger
	Notifier        Notifier
	AlertOnRecovery bool
	Cooldown        time.Duration
	SendTimeout     time.Duration

	mu         sync.Mutex
	seen       bool
	lastState  bool
	lastSentAt time.Time
}

func (a *StateAlerter) Observe(r *domain.PingResult) {
	a.mu.Lock()
	defer a.mu.Unlock()

	stateChanged := !a.seen || a.lastState != r.Success
	wasSeen := a.seen
	a.seen = true
	a.lastState = r.Success
	if !stateChanged {
		return
	}

	now := time.Now()
	cooled := a.lastSentAt.IsZero() || now.Sub(a.lastSentAt) >= a.Cooldown

	var title string
	switch {
	case !r.Success && cooled:
		title = "Target DOWN"
	case r.Success && wasSeen && a.AlertOnRecovery:
		title = "Target RECOVERED"
	default:
		return
	}

	text := fmt.Sprintf("URL: %s\nResult: %s\nTimestamp: %s", r.URL, r.Result, r.Key)

	timeout := a.SendTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := a.Notifier.Send(ctx, title, text); err != nil {
		a.Logger.Warn("alert_send_failed", zap.String("title", title), zap.Error(err))
		return
	}
	a.lastSentAt = now
}
