// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// api.go provides a Valkey-backed cache for the public JSON endpoints.
// The rendered payload for each listing is stored so repeat requests skip
// the database entirely; every admin mutation invalidates the affected key,
// so moderation decisions are visible on the very next read.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// apiKeyPrefix namespaces cached API payloads in Valkey.
	apiKeyPrefix = "api:"

	// DefaultAPITTL is how long a cached payload lives without invalidation.
	DefaultAPITTL = 5 * time.Minute

	// Cache keys for the three public listings.
	KeyApprovedFeedbacks = "feedbacks-aprovados"
	KeyProjects          = "projetos"
	KeyBlogPosts         = "blog"
)

// APICache manages public API payload caching in Valkey. A nil *APICache
// is valid and disables caching, so handlers don't need to special-case it.
type APICache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAPICache creates a new API payload cache backed by the given Valkey client.
func NewAPICache(client *redis.Client, ttl time.Duration) *APICache {
	if ttl == 0 {
		ttl = DefaultAPITTL
	}
	return &APICache{client: client, ttl: ttl}
}

// Get retrieves a cached payload. Returns false on miss (or when disabled).
func (c *APICache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, apiKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("api cache get error", "key", key, "error", err)
		return nil, false
	}
	return val, true
}

// Set stores a payload under the given key with the configured TTL.
func (c *APICache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil {
		return
	}
	if err := c.client.Set(ctx, apiKeyPrefix+key, payload, c.ttl).Err(); err != nil {
		slog.Warn("api cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a cached payload so the next read rebuilds it.
func (c *APICache) Invalidate(ctx context.Context, key string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, apiKeyPrefix+key).Err(); err != nil {
		slog.Warn("api cache invalidate error", "key", key, "error", err)
	}
}
