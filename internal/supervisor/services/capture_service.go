// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

// Package services wraps NetSentinel's long-running components as
// suture services.
package services

import (
	"context"
	"errors"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/netsentinel/internal/capture"
	"github.com/tomtom215/netsentinel/internal/logging"
)

// EventHandler receives each captured event. Satisfied by
// pipeline.Controller's HandleEvent.
type EventHandler interface {
	HandleEvent(ev capture.RawEvent)
}

// CaptureService runs one packet source feeding the detection pipeline.
// If the source fails (socket error, unreadable replay file) the
// supervisor restarts it. A replay source that has delivered its whole
// file is complete and is not restarted.
type CaptureService struct {
	source  capture.Source
	handler EventHandler
	name    string
}

// NewCaptureService wraps a packet source and its event handler.
func NewCaptureService(source capture.Source, handler EventHandler) *CaptureService {
	return &CaptureService{
		source:  source,
		handler: handler,
		name:    "capture",
	}
}

// Serve implements suture.Service. It blocks in the source's read loop
// until ctx is cancelled, the source fails, or a replay source finishes
// its file.
func (s *CaptureService) Serve(ctx context.Context) error {
	err := s.source.Run(ctx, s.handler.HandleEvent)
	if errors.Is(err, capture.ErrReplayComplete) {
		logging.Info().
			Str("source", s.source.String()).
			Msg("replay finished, capture service stopping")
		return suture.ErrDoNotRestart
	}
	return err
}

// String implements fmt.Stringer for suture's event log.
func (s *CaptureService) String() string {
	return s.name
}
