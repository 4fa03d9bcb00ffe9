// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Struct tag rules cover the
// per-field constraints; cross-field rules live in Validate below.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration for errors. It is called by Load after
// all sources are merged, so a bad value fails at startup rather than at
// first use.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q constraint", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	checks := []func() error{
		c.validateCapture,
		c.validateAlerts,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// validateCapture enforces source-specific requirements.
func (c *Config) validateCapture() error {
	if c.Capture.Source == "replay" && c.Capture.ReplayPath == "" {
		return fmt.Errorf("capture.replay_path is required when capture.source is \"replay\"")
	}
	return nil
}

// validateAlerts enforces that an enabled sound channel has an asset to play.
func (c *Config) validateAlerts() error {
	if c.Alerts.SoundEnabled && c.Alerts.SoundPath == "" {
		return fmt.Errorf("alerts.sound_path is required when alerts.sound_enabled is true")
	}
	return nil
}
