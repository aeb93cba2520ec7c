package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleYAML = `
environment: test
server:
  port: 9090
  read_timeout: 5s
  write_timeout: 5s
  shutdown_timeout: 5s
backend:
  type: kafka
  batch_size: 100
  batch_timeout: 1s
kafka:
  brokers: ["localhost:9092"]
  topic: bars_1m
clickhouse:
  host: localhost
  port: 9000
  database: histvol
feed:
  websocket_url: wss://feed.test/bars
  symbols: ["BTCUSDT"]
  reconnect_delay: 2s
  ping_interval: 10s
vol:
  default_window: 30
  cache_ttl: 15s
  redis:
    enabled: false
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Backend.Type != "kafka" {
		t.Fatalf("backend = %s", cfg.Backend.Type)
	}
	if cfg.Vol.DefaultWindow != 30 {
		t.Fatalf("default window = %d", cfg.Vol.DefaultWindow)
	}
	if cfg.Vol.CacheTTL != 15*time.Second {
		t.Fatalf("cache ttl = %v", cfg.Vol.CacheTTL)
	}
}

func TestLoadRejectsBadBackend(t *testing.T) {
	bad := sampleYAML + "\n"
	cfg, err := Load(writeConfig(t, bad))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Backend.Type = "postgres"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported backend")
	}
}

func TestValidateWindow(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Vol.DefaultWindow = 1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for window < 2")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("SYMBOLS", "ETHUSDT,SOLUSDT")
	t.Setenv("KAFKA_TOPIC", "bars_test")

	cfg, err := LoadWithEnv(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Feed.Symbols) != 2 || cfg.Feed.Symbols[0] != "ETHUSDT" {
		t.Fatalf("symbols = %v", cfg.Feed.Symbols)
	}
	if cfg.Kafka.Topic != "bars_test" {
		t.Fatalf("topic = %s", cfg.Kafka.Topic)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
