package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ModawnAI/everything-backend-sub009/internal/detector"
	"github.com/ModawnAI/everything-backend-sub009/pkg/redisclient"
)

// CachedGeoHistory is a Redis read-through cache in front of the
// known-country lookup. Cache failures fall through to the inner store;
// only an inner failure surfaces to the detector.
type CachedGeoHistory struct {
	inner  detector.GeoHistory
	redis  *redisclient.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedGeoHistory(inner detector.GeoHistory, redis *redisclient.Client, ttl time.Duration, logger *zap.Logger) *CachedGeoHistory {
	return &CachedGeoHistory{inner: inner, redis: redis, ttl: ttl, logger: logger}
}

func (c *CachedGeoHistory) KnownCountries(ctx context.Context, userID string) ([]string, error) {
	key := c.cacheKey(userID)

	if data, err := c.redis.Get(ctx, key); err == nil {
		var countries []string
		if err := json.Unmarshal([]byte(data), &countries); err == nil {
			return countries, nil
		}
	}

	countries, err := c.inner.KnownCountries(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(countries); err == nil {
		if err := c.redis.Set(ctx, key, data, c.ttl); err != nil {
			c.logger.Debug("failed to cache known countries", zap.Error(err))
		}
	}

	return countries, nil
}

func (c *CachedGeoHistory) cacheKey(userID string) string {
	return fmt.Sprintf("geo:known_countries:%s", userID)
}
