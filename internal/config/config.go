// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package config

import (
	"time"
)

// Config is the root configuration for NetSentinel.
//
// Values are resolved via layered sources (highest priority wins):
// environment variables > optional YAML config file > built-in defaults.
type Config struct {
	Capture   CaptureConfig   `koanf:"capture"`
	Model     ModelConfig     `koanf:"model"`
	Alerts    AlertsConfig    `koanf:"alerts"`
	AttackLog AttackLogConfig `koanf:"attacklog"`
	Pipeline  PipelineConfig  `koanf:"pipeline"`
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// CaptureConfig configures the raw event source.
type CaptureConfig struct {
	// Source selects the event source: "afpacket" (live capture) or
	// "replay" (newline-delimited JSON event file).
	Source string `koanf:"source" validate:"oneof=afpacket replay"`

	// Interface is the network interface to observe for live capture.
	// Empty means the default (all) interface.
	Interface string `koanf:"interface"`

	// ReplayPath is the event file consumed when Source is "replay".
	ReplayPath string `koanf:"replay_path"`

	// SnapLen is the maximum bytes read per frame in live capture.
	SnapLen int `koanf:"snap_len" validate:"gt=0"`
}

// ModelConfig configures the pre-trained artifact layer.
type ModelConfig struct {
	// Dir is the directory holding the fitted artifacts:
	// model.json, scaler.json, labels.json, protocols.json.
	Dir string `koanf:"dir" validate:"required"`
}

// AlertsConfig configures the alert fan-out channels.
type AlertsConfig struct {
	// SoundPath is the local audio asset played on detection.
	SoundPath string `koanf:"sound_path"`

	// SoundEnabled, VoiceEnabled and DesktopEnabled toggle the best-effort
	// channels. The console channel is always on.
	SoundEnabled   bool `koanf:"sound_enabled"`
	VoiceEnabled   bool `koanf:"voice_enabled"`
	DesktopEnabled bool `koanf:"desktop_enabled"`

	// ChannelTimeout bounds how long a single channel launch may take.
	ChannelTimeout time.Duration `koanf:"channel_timeout" validate:"gt=0"`
}

// AttackLogConfig configures the durable attack log.
type AttackLogConfig struct {
	// Path is the append-only log file. Parent directories are created.
	Path string `koanf:"path" validate:"required"`

	// MaxMemoryEntries caps the in-process mirror of the log. The file
	// itself is never truncated. 0 means unbounded.
	MaxMemoryEntries int `koanf:"max_memory_entries" validate:"gte=0"`
}

// PipelineConfig configures the per-event processing loop.
type PipelineConfig struct {
	// HeartbeatEvery emits a "normal traffic observed" line every N benign
	// events. 0 disables the heartbeat.
	HeartbeatEvery int `koanf:"heartbeat_every" validate:"gte=0"`

	// BenignLabel is the trained label treated as non-attack traffic.
	BenignLabel string `koanf:"benign_label" validate:"required"`
}

// ServerConfig configures the operational HTTP endpoint (healthz, metrics,
// recent alerts). This is not the visualization dashboard.
type ServerConfig struct {
	Enabled bool          `koanf:"enabled"`
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port" validate:"gt=0,lte=65535"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Capture: CaptureConfig{
			Source:     "afpacket",
			Interface:  "",
			ReplayPath: "",
			SnapLen:    65535,
		},
		Model: ModelConfig{
			Dir: "artifacts",
		},
		Alerts: AlertsConfig{
			SoundPath:      "resources/alert.wav",
			SoundEnabled:   true,
			VoiceEnabled:   true,
			DesktopEnabled: true,
			ChannelTimeout: 5 * time.Second,
		},
		AttackLog: AttackLogConfig{
			Path:             "logs/attacks.txt",
			MaxMemoryEntries: 10000,
		},
		Pipeline: PipelineConfig{
			HeartbeatEvery: 100,
			BenignLabel:    "normal",
		},
		Server: ServerConfig{
			Enabled: true,
			Host:    "127.0.0.1",
			Port:    9417,
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
	}
}
