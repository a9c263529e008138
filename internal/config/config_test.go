package config

import (
	"os"
	"testing"
	"time"
)

func TestFromEnv_ParsesAndDefaults(t *testing.T) {
	t.Setenv("TARGET_URL", "https://example.org")
	t.Setenv("STORE_URL", "https://eliasdb1:9090")
	t.Setenv("STORE_GRAPH", "probes")
	t.Setenv("INTERVAL_MS", "7000")
	t.Setenv("PROBE_TIMEOUT_MS", "2500")
	t.Setenv("STORE_TIMEOUT_MS", "3500")
	t.Setenv("STORE_INSECURE_SKIP_VERIFY", "true")
	t.Setenv("STATUS_ADDR", ":8080")
	t.Setenv("ALERT_COOLDOWN_MS", "60000")

	cfg := FromEnv()

	if cfg.TargetURL != "https://example.org" || cfg.StoreURL != "https://eliasdb1:9090" {
		t.Fatalf("urls wrong: %+v", cfg)
	}
	if cfg.StoreGraph != "probes" {
		t.Fatalf("graph wrong: %q", cfg.StoreGraph)
	}
	if cfg.Interval != 7*time.Second {
		t.Fatalf("interval wrong: %v", cfg.Interval)
	}
	if cfg.ProbeTimeout != 2500*time.Millisecond || cfg.StoreTimeout != 3500*time.Millisecond {
		t.Fatalf("timeouts wrong: %+v", cfg)
	}
	if !cfg.StoreInsecureSkipVerify {
		t.Fatalf("expected skip-verify on")
	}
	if cfg.StatusAddr != ":8080" {
		t.Fatalf("status addr wrong: %q", cfg.StatusAddr)
	}
	if cfg.AlertCooldown != time.Minute {
		t.Fatalf("cooldown wrong: %v", cfg.AlertCooldown)
	}

	// ensure defaults don’t crash if missing env
	os.Unsetenv("TARGET_URL")
	_ = FromEnv()
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	if cfg.TargetURL != "https://devt.de" {
		t.Fatalf("default target wrong: %q", cfg.TargetURL)
	}
	if cfg.StoreGraph != "main" || cfg.Interval != 5*time.Second {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
	if cfg.StoreInsecureSkipVerify {
		t.Fatalf("TLS verification must default to enabled")
	}
	if cfg.StatusAddr != "" || cfg.SlackWebhook != "" {
		t.Fatalf("optional surfaces should default to off: %+v", cfg)
	}
}

func TestFromEnv_IntervalFloor(t *testing.T) {
	t.Setenv("INTERVAL_MS", "200")

	cfg := FromEnv()
	if cfg.Interval != time.Second {
		t.Fatalf("interval below key granularity must clamp to 1s, got %v", cfg.Interval)
	}
}
