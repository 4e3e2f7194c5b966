// Copyright 2025 The Weather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

// Package httpapi is the plain HTTP/REST transport. It exposes the same
// tool surface as the MCP transports through a small JSON API, plus health
// and Prometheus metrics endpoints.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"weathermcp/internal/config"
	"weathermcp/internal/weather"
)

const (
	serverName    = "Weather MCP Server"
	serverVersion = "1.0.0"
)

// Server wraps the http.Server for the REST transport.
type Server struct {
	http *http.Server
	log  *slog.Logger
}

// New assembles the REST server over a shared weather.Service. gatherer
// backs the /metrics endpoint; pass the registry the service's counters
// were registered with.
func New(cfg config.Config, svc *weather.Service, gatherer prometheus.Gatherer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	h := &handlers{svc: svc, cfg: cfg, gatherer: gatherer}
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           withLogging(log, withCORS(h.routes())),
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
	return &Server{http: srv, log: log}
}

// Start blocks serving requests until the listener fails or Stop is called.
func (s *Server) Start() error {
	s.log.Info("listening", "addr", s.http.Addr)
	return s.http.ListenAndServe()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

type handlers struct {
	svc      *weather.Service
	cfg      config.Config
	gatherer prometheus.Gatherer
}

func (h *handlers) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.root)
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /mcp", h.mcpInfo)
	mux.HandleFunc("GET /mcp/tools", h.listTools)
	mux.HandleFunc("POST /mcp/tools/call", h.callTool)
	mux.HandleFunc("GET /mcp/resources", h.listResources)
	mux.HandleFunc("POST /mcp/resources/read", h.readResource)
	if h.gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}
	return mux
}

func (h *handlers) root(w http.ResponseWriter, _ *http.Request) {
	sendJSON(w, http.StatusOK, map[string]any{
		"name":     serverName,
		"version":  serverVersion,
		"protocol": "MCP over HTTP",
		"status":   "running",
	})
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	sendJSON(w, http.StatusOK, map[string]any{
		"status":             "healthy",
		"api_key_configured": h.cfg.APIKey != "",
		"cache_size":         h.svc.Cache().Len(),
	})
}

func (h *handlers) mcpInfo(w http.ResponseWriter, _ *http.Request) {
	sendJSON(w, http.StatusOK, map[string]any{
		"protocol": "MCP",
		"version":  serverVersion,
		"capabilities": map[string]bool{
			"tools":     true,
			"resources": true,
		},
		"endpoints": map[string]string{
			"tools":         "/mcp/tools",
			"call_tool":     "/mcp/tools/call",
			"resources":     "/mcp/resources",
			"read_resource": "/mcp/resources/read",
		},
	})
}

func (h *handlers) listTools(w http.ResponseWriter, _ *http.Request) {
	sendJSON(w, http.StatusOK, map[string]any{"tools": toolDescriptors})
}

// toolCallRequest is the POST /mcp/tools/call body.
type toolCallRequest struct {
	Tool      string          `json:"tool"`
	Arguments json.RawMessage `json:"arguments"`
}

func (h *handlers) callTool(w http.ResponseWriter, r *http.Request) {
	var req toolCallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	args := req.Arguments
	if len(args) == 0 {
		args = json.RawMessage(`{}`)
	}

	result, err := h.dispatch(r.Context(), req.Tool, args)
	if err != nil {
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}
	sendJSON(w, http.StatusOK, map[string]any{"result": result})
}

func (h *handlers) listResources(w http.ResponseWriter, _ *http.Request) {
	sendJSON(w, http.StatusOK, map[string]any{"resources": resourceDescriptors})
}

// resourceReadRequest is the POST /mcp/resources/read body.
type resourceReadRequest struct {
	URI string `json:"uri"`
}

func (h *handlers) readResource(w http.ResponseWriter, r *http.Request) {
	var req resourceReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	body, ok := resourceBodies[req.URI]
	if !ok {
		sendError(w, http.StatusNotFound, "Resource not found: "+req.URI)
		return
	}
	sendJSON(w, http.StatusOK, body)
}
