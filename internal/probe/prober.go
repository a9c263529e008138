package probe

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/krotik/pingcollector/internal/domain"
	"github.com/krotik/pingcollector/internal/store"
)

// Prober executes one probe cycle per invocation: GET the target, build
// the record, hand it to the store. It is the isolation boundary the
// scheduler relies on: Run never panics and has no error to return, so a
// failed cycle can never stop future ticks.
type Prober struct {
	Logger    *zap.Logger
	Checker   Checker
	Store     store.ResultStore
	Target    string
	Observers []Observer
}

func New(logger *zap.Logger, checker Checker, st store.ResultStore, target string, obs ...Observer) *Prober {
	return &Prober{
		Logger:    logger,
		Checker:   checker,
		Store:     st,
		Target:    target,
		Observers: obs,
	}
}

func (p *Prober) Run(ctx context.Context) {
	now := time.Now().Unix()
	p.Logger.Info("probe_start",
		zap.String("url", p.Target),
		zap.Int64("timestamp", now),
	)

	out := p.Checker.Check(ctx, p.Target)

	var rec *domain.PingResult
	if out.Success {
		rec = domain.NewSuccess(now, p.Target, out.Elapsed)
		p.Logger.Info("probe_ok",
			zap.String("url", p.Target),
			zap.Duration("elapsed", out.Elapsed),
			zap.String("status", out.Message),
		)
	} else {
		rec = domain.NewFailure(now, p.Target, out.Message)
		p.Logger.Warn("probe_failed",
			zap.String("url", p.Target),
			zap.String("error", out.Message),
		)
	}

	for _, o := range p.Observers {
		if o != nil {
			o.Observe(rec)
		}
	}

	if err := p.Store.Save(ctx, rec); err != nil {
		var se *store.SubmissionError
		if errors.As(err, &se) {
			p.Logger.Warn("store_rejected",
				zap.String("key", rec.Key),
				zap.Int("status", se.StatusCode),
				zap.String("body", se.Body),
			)
		} else {
			p.Logger.Warn("store_unreachable",
				zap.String("key", rec.Key),
				zap.Error(err),
			)
		}
		for _, o := range p.Observers {
			if so, ok := o.(SubmissionObserver); ok {
				so.SubmissionFailed()
			}
		}
	}
}
