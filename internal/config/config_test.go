package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %s", cfg.LogLevel)
	}
	if cfg.Generation.FailSafeTimeoutMS != 8000 {
		t.Errorf("expected 8000ms fail-safe, got %d", cfg.Generation.FailSafeTimeoutMS)
	}
	if cfg.Journal.Capacity != 256 {
		t.Errorf("expected journal capacity 256, got %d", cfg.Journal.Capacity)
	}

	// Defaults are persisted for the user to edit.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var onDisk Config
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatal(err)
	}
	if onDisk.ListenAddr != cfg.ListenAddr {
		t.Errorf("written defaults differ: %s vs %s", onDisk.ListenAddr, cfg.ListenAddr)
	}
}

func TestLoadExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"log_level":"debug","generation":{"fail_safe_timeout_ms":1234}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug, got %s", cfg.LogLevel)
	}
	if cfg.Generation.FailSafeTimeoutMS != 1234 {
		t.Errorf("expected 1234, got %d", cfg.Generation.FailSafeTimeoutMS)
	}
	// Unspecified fields keep their defaults.
	if cfg.ListenAddr == "" {
		t.Error("expected default listen addr")
	}
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("BRANDFORGE_LISTEN_ADDR", "127.0.0.1:9999")
	t.Setenv("BRANDFORGE_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddr != "127.0.0.1:9999" {
		t.Errorf("env override ignored: %s", cfg.ListenAddr)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("env override ignored: %s", cfg.LogLevel)
	}
}
