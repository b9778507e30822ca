package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RecommendationCache stores ranked menu-item id lists in Redis with a TTL.
type RecommendationCache struct {
	client *redis.Client
}

func NewRecommendationCache(addr string) *RecommendationCache {
	return &RecommendationCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (c *RecommendationCache) Get(ctx context.Context, key string) ([]uint, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []uint
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (c *RecommendationCache) Set(ctx context.Context, key string, ids []uint, ttl time.Duration) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}

func (c *RecommendationCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
