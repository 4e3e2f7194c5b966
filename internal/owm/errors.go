// Copyright 2025 The Weather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package owm

import "errors"

// Kind classifies an upstream failure. Failure is an expected, frequent
// outcome here (bad location names, missing keys), so it travels as a value
// rather than as control flow.
type Kind string

const (
	// KindConfiguration means the provider API key is absent. Detected per
	// request, never at startup; reported identically on every call.
	KindConfiguration Kind = "configuration_error"
	// KindNotFound maps upstream 404, typically an unrecognized location.
	KindNotFound Kind = "not_found"
	// KindUnauthorized maps upstream 401 (invalid API key).
	KindUnauthorized Kind = "unauthorized"
	// KindTimeout means the 10-second per-call deadline elapsed.
	KindTimeout Kind = "timeout"
	// KindTransport covers network failures other than timeouts.
	KindTransport Kind = "transport_error"
	// KindUpstream covers other non-2xx statuses and malformed bodies.
	KindUpstream Kind = "upstream_error"
)

// Error is a categorized upstream failure. Status is set for KindUpstream,
// KindNotFound and KindUnauthorized.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// AsError extracts the typed failure from err, if any.
func AsError(err error) (*Error, bool) {
	var oe *Error
	ok := errors.As(err, &oe)
	return oe, ok
}
