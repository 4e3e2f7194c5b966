// Copyright 2025 The Weather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

// Package cache provides the in-process TTL response cache shared by all
// tool invocations. Entries expire lazily: a read that finds a stale entry
// deletes it. There is no size bound and no background sweeper — the cache
// grows with the cardinality of distinct requests and lives exactly as long
// as the process. This is a known scaling limitation, kept deliberately.
package cache

import (
	"encoding/json"
	"net/url"
	"sync"
	"time"
)

// DefaultTTL is the freshness window applied when no TTL is configured.
const DefaultTTL = 600 * time.Second

type entry struct {
	payload  json.RawMessage
	storedAt time.Time
}

// Cache maps request fingerprints to raw upstream payloads. It is safe for
// concurrent use; the mutex protects map structure only. Concurrent misses
// on the same fingerprint may each reach the upstream and each write the
// cache (last write wins) — responses are idempotent reads of public data,
// so no single-flight de-duplication is attempted.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration

	now func() time.Time // overridable in tests
}

// New creates an empty cache whose entries stay fresh for ttl. A ttl <= 0
// falls back to DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the payload stored under key if it is still fresh. A stale
// entry is removed as a side effect, so a second Get after expiry also
// reports absent.
func (c *Cache) Get(key string) (json.RawMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.payload, true
}

// Put stores payload under key with storedAt = now, unconditionally
// overwriting any prior entry (last write wins, no versioning).
func (c *Cache) Put(key string, payload json.RawMessage) {
	c.mu.Lock()
	c.entries[key] = entry{payload: payload, storedAt: c.now()}
	c.mu.Unlock()
}

// Len reports the current entry count, including entries that have expired
// but not yet been read.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// TTL returns the configured freshness window.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Key builds the request fingerprint from an endpoint identity and its
// query parameters. url.Values.Encode serializes keys in sorted order, so
// two logically identical requests with parameters supplied in different
// orders map to the same key. The API key is injected downstream by the
// upstream client and never becomes part of a fingerprint.
func Key(endpoint string, params url.Values) string {
	return endpoint + "?" + params.Encode()
}
