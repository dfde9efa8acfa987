package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/charanteja2729/mood-based-song-recommender/internal/core/domain"
)

// QueryCache keeps shaped search results in redis, keyed by query and limit.
// It caches provider payloads only, never mood predictions.
type QueryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewQueryCache wraps an existing redis client as a search-result cache.
func NewQueryCache(rdb *redis.Client, ttl time.Duration) *QueryCache {
	return &QueryCache{rdb: rdb, ttl: ttl}
}

func cacheKey(query string, limit int) string {
	return fmt.Sprintf("spotify:search:%d:%s", limit, query)
}

func (qc *QueryCache) get(ctx context.Context, query string, limit int) ([]domain.Track, bool) {
	raw, err := qc.rdb.Get(ctx, cacheKey(query, limit)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("WARN spotify adapter: cache read failed: %v", err)
		}
		return nil, false
	}

	var tracks []domain.Track
	if err := json.Unmarshal(raw, &tracks); err != nil {
		log.Printf("WARN spotify adapter: cache entry corrupt, ignoring: %v", err)
		return nil, false
	}

	return tracks, true
}

func (qc *QueryCache) put(ctx context.Context, query string, limit int, tracks []domain.Track) {
	raw, err := json.Marshal(tracks)
	if err != nil {
		log.Printf("WARN spotify adapter: cache encode failed: %v", err)
		return
	}

	if err := qc.rdb.Set(ctx, cacheKey(query, limit), raw, qc.ttl).Err(); err != nil {
		log.Printf("WARN spotify adapter: cache write failed: %v", err)
	}
}
