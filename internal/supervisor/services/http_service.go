// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package services

import (
	"context"
)

// HTTPServer matches server.Server's Serve method without importing the
// server package, keeping this package free of transport dependencies.
type HTTPServer interface {
	Serve(ctx context.Context) error
}

// HTTPService wraps the operational HTTP server as a supervised service.
type HTTPService struct {
	server HTTPServer
	name   string
}

// NewHTTPService wraps an HTTP server.
func NewHTTPService(server HTTPServer) *HTTPService {
	return &HTTPService{
		server: server,
		name:   "http-api",
	}
}

// Serve implements suture.Service.
func (s *HTTPService) Serve(ctx context.Context) error {
	return s.server.Serve(ctx)
}

// String implements fmt.Stringer for suture's event log.
func (s *HTTPService) String() string {
	return s.name
}
