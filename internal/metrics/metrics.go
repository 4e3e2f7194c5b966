// Copyright 2025 The Weather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

// Package metrics defines the Prometheus instrumentation shared by the
// dispatcher and the transports.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles the counters the dispatcher updates. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
	UpstreamRequests *prometheus.CounterVec // label: outcome (success or failure kind)
	ToolCalls        *prometheus.CounterVec // label: tool
}

// New creates the counters and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "weathermcp_cache_hits_total",
			Help: "Tool requests served from the response cache.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "weathermcp_cache_misses_total",
			Help: "Tool requests that missed the response cache.",
		}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "weathermcp_upstream_requests_total",
			Help: "Upstream provider calls by outcome.",
		}, []string{"outcome"}),
		ToolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "weathermcp_tool_calls_total",
			Help: "Tool invocations by tool name.",
		}, []string{"tool"}),
	}
	reg.MustRegister(m.CacheHits, m.CacheMisses, m.UpstreamRequests, m.ToolCalls)
	return m
}

// Hit records a cache hit.
func (m *Metrics) Hit() {
	if m != nil {
		m.CacheHits.Inc()
	}
}

// Miss records a cache miss.
func (m *Metrics) Miss() {
	if m != nil {
		m.CacheMisses.Inc()
	}
}

// Upstream records an upstream call with the given outcome label.
func (m *Metrics) Upstream(outcome string) {
	if m != nil {
		m.UpstreamRequests.WithLabelValues(outcome).Inc()
	}
}

// Tool records a tool invocation.
func (m *Metrics) Tool(name string) {
	if m != nil {
		m.ToolCalls.WithLabelValues(name).Inc()
	}
}
