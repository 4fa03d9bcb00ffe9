// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/netsentinel/internal/attacklog"
	"github.com/tomtom215/netsentinel/internal/logging"
	"github.com/tomtom215/netsentinel/internal/pipeline"
)

// apiResponse is the envelope every JSON endpoint returns.
type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusResponse is the /api/v1/status payload.
type statusResponse struct {
	Status        string         `json:"status"`
	UptimeSeconds int64          `json:"uptime_seconds"`
	Pipeline      pipeline.Stats `json:"pipeline"`
	AttackLogPath string         `json:"attack_log_path"`
	SessionAlerts int            `json:"session_alerts"`
}

// alertsResponse is the /api/v1/alerts payload.
type alertsResponse struct {
	Count  int               `json:"count"`
	Alerts []attacklog.Entry `json:"alerts"`
}

func writeJSON(w http.ResponseWriter, status int, resp apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Error().Err(err).Msg("failed to encode API response")
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiResponse{
		Success: false,
		Error:   &apiError{Code: code, Message: message},
	})
}

// handleHealth is the liveness probe: the process is up.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Data:    map[string]string{"status": "ok"},
	})
}

// handleReady reports readiness: degraded (missing artifacts) is still
// 200, because the pipeline is intentionally running in that state; the
// body says which mode it is in.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	mode := "classifying"
	if !s.ctrl.Stats().ModelReady {
		mode = "degraded"
	}
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Data:    map[string]string{"status": "ok", "mode": mode},
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	stats := s.ctrl.Stats()

	status := "monitoring"
	if !stats.ModelReady {
		status = "degraded"
	}

	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Data: statusResponse{
			Status:        status,
			UptimeSeconds: int64(time.Since(s.started).Seconds()),
			Pipeline:      stats,
			AttackLogPath: s.log.Path(),
			SessionAlerts: s.log.Len(),
		},
	})
}

// handleAlerts returns up to limit recent session alerts, newest last.
func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	limit := defaultAlertLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid_limit", "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	// limit=0 is an explicit empty window, not "all".
	var entries []attacklog.Entry
	if limit > 0 {
		entries = s.log.Recent(limit)
	}
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Data: alertsResponse{
			Count:  len(entries),
			Alerts: entries,
		},
	})
}
