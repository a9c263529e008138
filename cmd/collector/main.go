package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/krotik/pingcollector/internal/config"
	"github.com/krotik/pingcollector/internal/httpapi"
	"github.com/krotik/pingcollector/internal/logging"
	"github.com/krotik/pingcollector/internal/notify"
	"github.com/krotik/pingcollector/internal/probe"
	"github.com/krotik/pingcollector/internal/scheduler"
	"github.com/krotik/pingcollector/internal/store"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if cfg.StoreInsecureSkipVerify {
		logger.Warn("store_tls_verification_disabled",
			zap.String("store_url", cfg.StoreURL))
	}

	st := store.New(cfg.StoreURL, cfg.StoreGraph, cfg.StoreTimeout, cfg.StoreInsecureSkipVerify)
	checker := probe.NewHTTPChecker(cfg.ProbeTimeout)

	var observers []probe.Observer
	var board *httpapi.StatusBoard
	if cfg.StatusAddr != "" {
		board = httpapi.NewStatusBoard(cfg.TargetURL)
		observers = append(observers, board)
	}
	if cfg.SlackWebhook != "" {
		observers = append(observers, &notify.StateAlerter{
			Logger:          logger,
			Notifier:        notify.NewSlack(cfg.SlackWebhook),
			AlertOnRecovery: cfg.AlertOnRecovery,
			Cooldown:        cfg.AlertCooldown,
		})
	}

	prober := probe.New(logger, checker, st, cfg.TargetURL, observers...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if board != nil {
		srv := httpapi.NewServer(logger, board)
		go func() {
			logger.Info("status_listen", zap.String("addr", cfg.StatusAddr))
			if err := http.ListenAndServe(cfg.StatusAddr, srv.Router()); err != nil {
				logger.Error("status_server_error", zap.Error(err))
			}
		}()
	}

	logger.Info("collector_start",
		zap.String("target", cfg.TargetURL),
		zap.String("store", cfg.StoreURL),
		zap.String("graph", cfg.StoreGraph),
		zap.Duration("interval", cfg.Interval),
	)

	scheduler.New(logger, cfg.Interval).Run(ctx, prober.Run)
}
