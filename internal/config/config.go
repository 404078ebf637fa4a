package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	DataDir    string `json:"data_dir"`
	LogLevel   string `json:"log_level"`
	ListenAddr string `json:"listen_addr"`
	Generation struct {
		FailSafeTimeoutMS  int `json:"fail_safe_timeout_ms"`
		SynthesisLatencyMS int `json:"synthesis_latency_ms"`
	} `json:"generation"`
	Journal struct {
		Capacity int `json:"capacity"`
	} `json:"journal"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		DataDir:    filepath.Join(os.Getenv("HOME"), ".brandforge"),
		LogLevel:   "info",
		ListenAddr: "127.0.0.1:8460",
	}
	cfg.Generation.FailSafeTimeoutMS = 8000
	cfg.Generation.SynthesisLatencyMS = 600
	cfg.Journal.Capacity = 256

	// Load from file if exists, otherwise write defaults
	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if os.IsNotExist(err) {
		if err := writeDefaults(path, cfg); err != nil {
			return nil, err
		}
	}

	// Override from env (highest precedence)
	if addr := os.Getenv("BRANDFORGE_LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if level := os.Getenv("BRANDFORGE_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}

func writeDefaults(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	data = append(data, '\n')
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename default config: %w", err)
	}
	return nil
}
