// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// loadClean runs Load from a temp working directory so no developer
// config.yaml leaks into the test.
func loadClean(t *testing.T) (*Config, error) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restoring working directory failed: %v", err)
		}
	})
	return Load()
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadClean(t)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Capture.Source != "afpacket" {
		t.Errorf("expected default capture source afpacket, got %q", cfg.Capture.Source)
	}
	if cfg.AttackLog.Path != "logs/attacks.txt" {
		t.Errorf("expected default attack log path, got %q", cfg.AttackLog.Path)
	}
	if cfg.Pipeline.HeartbeatEvery != 100 {
		t.Errorf("expected default heartbeat every 100, got %d", cfg.Pipeline.HeartbeatEvery)
	}
	if cfg.Pipeline.BenignLabel != "normal" {
		t.Errorf("expected default benign label normal, got %q", cfg.Pipeline.BenignLabel)
	}
	if cfg.Alerts.ChannelTimeout != 5*time.Second {
		t.Errorf("expected default channel timeout 5s, got %v", cfg.Alerts.ChannelTimeout)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CAPTURE_INTERFACE", "eth1")
	t.Setenv("PIPELINE_HEARTBEAT_EVERY", "25")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := loadClean(t)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Capture.Interface != "eth1" {
		t.Errorf("expected env interface override eth1, got %q", cfg.Capture.Interface)
	}
	if cfg.Pipeline.HeartbeatEvery != 25 {
		t.Errorf("expected env heartbeat override 25, got %d", cfg.Pipeline.HeartbeatEvery)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected env log level override debug, got %q", cfg.Logging.Level)
	}
}

func TestLoadPrefixedEnvOverride(t *testing.T) {
	t.Setenv("NETSENTINEL_CAPTURE_INTERFACE", "eth7")
	t.Setenv("NETSENTINEL_ALERTS_SOUND_ENABLED", "false")

	cfg, err := loadClean(t)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Capture.Interface != "eth7" {
		t.Errorf("expected prefixed env interface override eth7, got %q", cfg.Capture.Interface)
	}
	if cfg.Alerts.SoundEnabled {
		t.Error("expected prefixed env to disable sound channel")
	}
}

func TestLoadUnknownEnvIgnored(t *testing.T) {
	t.Setenv("CAPTURE_BOGUS_SETTING", "whatever")

	if _, err := loadClean(t); err != nil {
		t.Fatalf("Load failed on unknown env var: %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "netsentinel.yaml")
	yaml := "capture:\n  source: replay\n  replay_path: events.jsonl\nserver:\n  port: 9999\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("writing config file failed: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := loadClean(t)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Capture.Source != "replay" {
		t.Errorf("expected file source override replay, got %q", cfg.Capture.Source)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("expected file port override 9999, got %d", cfg.Server.Port)
	}
	// Untouched settings keep their defaults.
	if cfg.Pipeline.BenignLabel != "normal" {
		t.Errorf("expected defaults to survive file overlay, got %q", cfg.Pipeline.BenignLabel)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad capture source", func(c *Config) { c.Capture.Source = "pcap" }},
		{"replay without path", func(c *Config) { c.Capture.Source = "replay"; c.Capture.ReplayPath = "" }},
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"empty log path", func(c *Config) { c.AttackLog.Path = "" }},
		{"negative heartbeat", func(c *Config) { c.Pipeline.HeartbeatEvery = -1 }},
		{"empty benign label", func(c *Config) { c.Pipeline.BenignLabel = "" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"sound enabled without path", func(c *Config) { c.Alerts.SoundEnabled = true; c.Alerts.SoundPath = "" }},
		{"zero channel timeout", func(c *Config) { c.Alerts.ChannelTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := defaultConfig().Validate(); err != nil {
		t.Fatalf("default configuration should validate, got: %v", err)
	}
}
