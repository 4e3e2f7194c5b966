// Copyright 2025 The Weather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package httpapi

import (
	"encoding/json"
	"net/http"
)

func sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorDetail mirrors the {"detail": ...} error body shape of the original
// HTTP surface.
type errorDetail struct {
	Detail string `json:"detail"`
}

func sendError(w http.ResponseWriter, status int, detail string) {
	sendJSON(w, status, errorDetail{Detail: detail})
}
