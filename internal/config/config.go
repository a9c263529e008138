package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	TargetURL    string        // URL the collector probes
	StoreURL     string        // EliasDB base URL, e.g., https://eliasdb1:9090
	StoreGraph   string        // graph partition records are stored in
	Interval     time.Duration // probe cadence
	ProbeTimeout time.Duration // HTTP client timeout for the probe GET
	StoreTimeout time.Duration // HTTP client timeout for the store POST

	// StoreInsecureSkipVerify disables TLS certificate verification toward
	// the store. Off unless the deployment explicitly opts in.
	StoreInsecureSkipVerify bool

	StatusAddr string // status API bind address; empty disables the server
	LogDir     string // logs directory

	SlackWebhook    string        // empty disables alerting
	AlertOnRecovery bool          // send an alert when the target comes back
	AlertCooldown   time.Duration // suppress repeated down alerts
}

func FromEnv() Config {
	target := os.Getenv("TARGET_URL")
	if target == "" {
		target = "https://devt.de"
	}

	storeURL := os.Getenv("STORE_URL")
	if storeURL == "" {
		storeURL = "https://eliasdb1:9090"
	}

	graph := os.Getenv("STORE_GRAPH")
	if graph == "" {
		graph = "main"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	interval := durationMS("INTERVAL_MS", 5*time.Second)
	// The record key has second granularity; anything faster would
	// overwrite records within the same second.
	if interval < time.Second {
		interval = time.Second
	}

	return Config{
		TargetURL:               target,
		StoreURL:                storeURL,
		StoreGraph:              graph,
		Interval:                interval,
		ProbeTimeout:            durationMS("PROBE_TIMEOUT_MS", 10*time.Second),
		StoreTimeout:            durationMS("STORE_TIMEOUT_MS", 10*time.Second),
		StoreInsecureSkipVerify: boolean("STORE_INSECURE_SKIP_VERIFY", false),
		StatusAddr:              os.Getenv("STATUS_ADDR"),
		LogDir:                  logDir,
		SlackWebhook:            os.Getenv("SLACK_WEBHOOK"),
		AlertOnRecovery:         boolean("ALERT_ON_RECOVERY", true),
		AlertCooldown:           durationMS("ALERT_COOLDOWN_MS", 5*time.Minute),
	}
}

func durationMS(name string, def time.Duration) time.Duration {
	if v := os.Getenv(name); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}

func boolean(name string, def bool) bool {
	if v := os.Getenv(name); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
