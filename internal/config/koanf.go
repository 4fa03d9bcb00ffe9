// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/netsentinel/config.yaml",
	"/etc/netsentinel/config.yml",
}

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "NETSENTINEL_CONFIG"

// Load loads configuration using Koanf v2 with layered sources:
//
//  1. Defaults: built-in sensible defaults
//  2. Config file: optional YAML file (if one exists)
//  3. Environment variables: override any setting
//
// The returned configuration has already passed Validate.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: optional config file
	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
		return ""
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envMappings maps environment variable names (lowercased) to koanf config
// paths. Unknown environment variables are ignored rather than vacuumed
// into the configuration tree.
var envMappings = map[string]string{
	// Capture source
	"capture_source":      "capture.source",
	"capture_interface":   "capture.interface",
	"capture_replay_path": "capture.replay_path",
	"capture_snap_len":    "capture.snap_len",

	// Model artifacts
	"model_dir": "model.dir",

	// Alert channels
	"alerts_sound_path":      "alerts.sound_path",
	"alerts_sound_enabled":   "alerts.sound_enabled",
	"alerts_voice_enabled":   "alerts.voice_enabled",
	"alerts_desktop_enabled": "alerts.desktop_enabled",
	"alerts_channel_timeout": "alerts.channel_timeout",

	// Attack log
	"attacklog_path":               "attacklog.path",
	"attacklog_max_memory_entries": "attacklog.max_memory_entries",

	// Pipeline
	"pipeline_heartbeat_every": "pipeline.heartbeat_every",
	"pipeline_benign_label":    "pipeline.benign_label",

	// Operational HTTP server
	"server_enabled": "server.enabled",
	"server_host":    "server.host",
	"server_port":    "server.port",
	"server_timeout": "server.timeout",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envPrefix is the project prefix accepted (and stripped) on any mapped
// environment variable. The bare form works too.
const envPrefix = "NETSENTINEL_"

// envTransformFunc transforms environment variable names to koanf config
// paths. Returning "" drops the variable.
//
// Examples:
//   - NETSENTINEL_CAPTURE_INTERFACE -> capture.interface
//   - CAPTURE_INTERFACE             -> capture.interface
//   - LOG_LEVEL                     -> logging.level
func envTransformFunc(key string) string {
	key = strings.TrimPrefix(key, envPrefix)
	return envMappings[strings.ToLower(key)]
}
