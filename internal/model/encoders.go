// NetSentinel - Real-Time Network Intrusion Detection and Alerting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/netsentinel

package model

import (
	"fmt"
	"strings"
)

// UnknownLabel is the sentinel returned for any failure along the
// extract-encode-classify chain. It is never a trained label, never
// logged as an attack, and never alerted.
const UnknownLabel = "unknown"

// UnknownProtocolCode is the fallback code for categories absent from the
// fitted protocol mapping. Encoding an unknown category is not an error.
const UnknownProtocolCode = 0

// ProtocolEncoder maps a protocol category string to the small integer
// code fitted at training time. The code is the category's index in the
// fitted class list.
type ProtocolEncoder struct {
	Classes []string `json:"classes"`

	index map[string]int
}

// validate builds the lookup index and rejects empty or duplicated
// class lists.
func (e *ProtocolEncoder) validate() error {
	if len(e.Classes) == 0 {
		return fmt.Errorf("protocol encoder has no classes")
	}
	e.index = make(map[string]int, len(e.Classes))
	for i, c := range e.Classes {
		if _, dup := e.index[c]; dup {
			return fmt.Errorf("protocol encoder has duplicate class %q", c)
		}
		e.index[c] = i
	}
	return nil
}

// Encode returns the fitted code for a category. Categories absent from
// the fitted mapping yield UnknownProtocolCode; this must not fail.
func (e *ProtocolEncoder) Encode(category string) int {
	if code, ok := e.index[category]; ok {
		return code
	}
	return UnknownProtocolCode
}

// LabelEncoder maps a predicted class index back to its label string.
type LabelEncoder struct {
	Classes []string `json:"classes"`
}

// validate rejects empty label sets.
func (e *LabelEncoder) validate() error {
	if len(e.Classes) == 0 {
		return fmt.Errorf("label encoder has no classes")
	}
	return nil
}

// Label returns the label for a class index, or UnknownLabel for an index
// outside the fitted range.
func (e *LabelEncoder) Label(index int) string {
	if index < 0 || index >= len(e.Classes) {
		return UnknownLabel
	}
	return e.Classes[index]
}

// Labels returns a copy of the fitted label set.
func (e *LabelEncoder) Labels() []string {
	out := make([]string, len(e.Classes))
	copy(out, e.Classes)
	return out
}

// IsBenign reports whether a label names non-attack traffic, using a
// case-insensitive compare against the configured benign label and the
// unknown sentinel.
func IsBenign(label, benignLabel string) bool {
	return strings.EqualFold(label, benignLabel) || strings.EqualFold(label, UnknownLabel)
}
