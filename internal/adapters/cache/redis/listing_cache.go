// Package redis caches the public property catalogue. A nil client degrades
// every operation to a no-op so the service always falls back to the database.
package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/EstateDesk/estate_management_app/internal/core/domain"
	portsrepo "github.com/EstateDesk/estate_management_app/internal/core/ports/repositories"
	"github.com/EstateDesk/estate_management_app/internal/middleware"
)

const propertyListKey = "properties:catalogue"

// NewClient connects to Redis and pings it with a short timeout. Returns nil
// on failure; callers treat a nil client as cache-disabled.
func NewClient(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unreachable, listing cache disabled", slog.String("addr", addr), slog.String("error", err.Error()))
		return nil
	}
	return client
}

// ListingCache is the read-through cache for the public catalogue.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ portsrepo.ListingCache = (*ListingCache)(nil)

func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{client: client, ttl: ttl}
}

func (c *ListingCache) GetPropertyList(ctx context.Context) ([]domain.Property, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, propertyListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			middleware.GetLoggerFromCtx(ctx).Warn("Listing cache read failed", slog.String("error", err.Error()))
		}
		return nil, false
	}
	var properties []domain.Property
	if err := json.Unmarshal(payload, &properties); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Listing cache payload corrupt, dropping", slog.String("error", err.Error()))
		c.InvalidatePropertyList(ctx)
		return nil, false
	}
	return properties, true
}

func (c *ListingCache) SetPropertyList(ctx context.Context, properties []domain.Property) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(properties)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, propertyListKey, payload, c.ttl).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Listing cache write failed", slog.String("error", err.Error()))
	}
}

func (c *ListingCache) InvalidatePropertyList(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, propertyListKey).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Listing cache invalidation failed", slog.String("error", err.Error()))
	}
}
