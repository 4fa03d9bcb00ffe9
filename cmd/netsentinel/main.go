// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

// Package main is the entry point for the NetSentinel daemon.
//
// NetSentinel watches live network traffic, classifies each packet with
// a pre-trained decision-forest model, and reacts to attack traffic with
// a durable log entry plus console, sound, voice, and desktop alerts.
//
// # Application Architecture
//
// The daemon initializes components in the following order:
//
//  1. Configuration: layered load from defaults, config.yaml, and
//     NETSENTINEL_* environment variables (Koanf v2)
//  2. Logging: zerolog, console or JSON
//  3. Model artifacts: scaler, protocol/label encoders, decision forest
//     (missing artifacts degrade to "unknown" classifications)
//  4. Attack log and alert channels
//  5. Packet source: AF_PACKET live capture or JSONL replay
//  6. Supervisor tree: capture layer and operational HTTP layer
//
// # Configuration
//
// Highest priority wins:
//   - Environment variables (NETSENTINEL_CAPTURE_INTERFACE, ...)
//   - Config file (config.yaml, or NETSENTINEL_CONFIG)
//   - Built-in defaults
//
// The -iface flag is a convenience override for the one setting that
// changes per host.
//
// # Privileges
//
// Live capture opens an AF_PACKET raw socket and needs root or
// CAP_NET_RAW. Replay mode (capture.source=replay) runs unprivileged.
//
// # Signal Handling
//
// SIGINT and SIGTERM stop capture, drain in-flight alert channels, and
// shut the HTTP server down gracefully before exit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/tomtom215/netsentinel/internal/alert"
	"github.com/tomtom215/netsentinel/internal/attacklog"
	"github.com/tomtom215/netsentinel/internal/capture"
	"github.com/tomtom215/netsentinel/internal/config"
	"github.com/tomtom215/netsentinel/internal/logging"
	"github.com/tomtom215/netsentinel/internal/model"
	"github.com/tomtom215/netsentinel/internal/pipeline"
	"github.com/tomtom215/netsentinel/internal/server"
	"github.com/tomtom215/netsentinel/internal/supervisor"
	"github.com/tomtom215/netsentinel/internal/supervisor/services"
)

const banner = `
  _   _      _   ____             _   _            _
 | \ | | ___| |_/ ___|  ___ _ __ | |_(_)_ __   ___| |
 |  \| |/ _ \ __\___ \ / _ \ '_ \| __| | '_ \ / _ \ |
 | |\  |  __/ |_ ___) |  __/ | | | |_| | | | |  __/ |
 |_| \_|\___|\__|____/ \___|_| |_|\__|_|_| |_|\___|_|

       Real-Time Network Intrusion Detection
`

func main() {
	iface := flag.String("iface", "", "capture interface (overrides configuration)")
	flag.Parse()

	fmt.Print(banner)

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}
	if *iface != "" {
		cfg.Capture.Interface = *iface
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("source", cfg.Capture.Source).
		Str("interface", cfg.Capture.Interface).
		Str("model_dir", cfg.Model.Dir).
		Str("attack_log", cfg.AttackLog.Path).
		Msg("configuration loaded")

	artifacts, err := model.Load(cfg.Model.Dir)
	if err != nil {
		logging.Fatal().Err(err).Msg("model artifacts rejected")
	}
	if artifacts.Ready() {
		logging.Info().Strs("labels", artifacts.Labels.Labels()).Msg("model loaded")
	}

	attackLog := attacklog.New(cfg.AttackLog.Path, cfg.AttackLog.MaxMemoryEntries)
	dispatcher := alert.NewDispatcher(
		alert.NewConsoleNotifier(),
		buildChannels(cfg.Alerts),
		cfg.Alerts.ChannelTimeout,
	)
	ctrl := pipeline.NewController(artifacts, attackLog, dispatcher,
		cfg.Pipeline.BenignLabel, cfg.Pipeline.HeartbeatEvery)

	source, err := buildSource(cfg.Capture)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to open packet source")
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddCaptureService(services.NewCaptureService(source, ctrl))
	if cfg.Server.Enabled {
		tree.AddAPIService(services.NewHTTPService(server.New(cfg.Server, ctrl, attackLog)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("monitoring started, press Ctrl+C to stop")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("supervisor tree exited")
	}

	dispatcher.Drain()

	if unstopped, err := tree.UnstoppedServiceReport(); err == nil && len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("service ignored shutdown")
		}
	}

	stats := ctrl.Stats()
	logging.Info().
		Uint64("events", stats.EventsProcessed).
		Uint64("attacks", stats.Attacks).
		Msg("monitoring stopped")
	fmt.Println("\nMonitoring stopped. Stay safe!")
}

// buildChannels assembles the background alert channels in priority
// order. Disabled channels are skipped at dispatch time; channels whose
// tooling is absent additionally disable themselves.
func buildChannels(cfg config.AlertsConfig) []alert.Notifier {
	return []alert.Notifier{
		alert.NewSoundNotifier(cfg.SoundPath, cfg.SoundEnabled),
		alert.NewVoiceNotifier(cfg.VoiceEnabled),
		alert.NewDesktopNotifier(cfg.DesktopEnabled),
	}
}

// buildSource opens the configured packet source.
func buildSource(cfg config.CaptureConfig) (capture.Source, error) {
	switch cfg.Source {
	case "replay":
		return capture.NewReplaySource(cfg.ReplayPath)
	default:
		return capture.NewAFPacketSource(cfg.Interface, cfg.SnapLen)
	}
}
