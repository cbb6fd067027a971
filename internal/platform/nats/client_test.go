package nats

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.URL != "nats://localhost:4222" {
		t.Errorf("expected default URL nats://localhost:4222, got %s", cfg.URL)
	}
	if cfg.MaxReconnects != -1 {
		t.Errorf("expected unlimited reconnects (-1), got %d", cfg.MaxReconnects)
	}
	if cfg.ReconnectWait != 2*time.Second {
		t.Errorf("expected 2s reconnect wait, got %v", cfg.ReconnectWait)
	}
	if cfg.JetStream {
		t.Error("expected core publishing by default")
	}
}

func TestGeyserStreamConfig(t *testing.T) {
	subjects := []string{"accounts", "transactions", "metadata", "nft", "slots"}
	cfg := GeyserStreamConfig("GEYSER", subjects)

	if cfg.Name != "GEYSER" {
		t.Errorf("expected stream name GEYSER, got %s", cfg.Name)
	}
	if len(cfg.Subjects) != len(subjects) {
		t.Errorf("expected %d subjects, got %v", len(subjects), cfg.Subjects)
	}
	if cfg.MaxAge != 24*time.Hour {
		t.Errorf("expected 24h max age, got %v", cfg.MaxAge)
	}
}

func TestConnect_Unreachable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.URL = "nats://127.0.0.1:1"
	cfg.ConnectTimeout = 100 * time.Millisecond

	if _, err := Connect(t.Context(), cfg, nil); err == nil {
		t.Fatal("expected connect error")
	}
}
