package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// AvailabilityCache keeps computed day views for a short TTL. Each
// (barber, day) pair carries a version counter bumped on every booking,
// cancellation or block mutation, so stale entries become unreachable
// immediately without scanning keys.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func NewAvailabilityCache(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb, ttl: ttl, log: log}
}

func versionKey(barberID uint, day string) string {
	return fmt.Sprintf("avail:ver:%d:%s", barberID, day)
}

func slotsKey(barberID uint, day string, durationMin int, version string) string {
	return fmt.Sprintf("avail:%d:%s:%d:v%s", barberID, day, durationMin, version)
}

func (c *AvailabilityCache) Get(ctx context.Context, barberID uint, day string, durationMin int) ([]string, bool) {
	ver, err := c.rdb.Get(ctx, versionKey(barberID, day)).Result()
	if err == redis.Nil {
		ver = "0"
	} else if err != nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotsKey(barberID, day, durationMin, ver)).Result()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(ctx context.Context, barberID uint, day string, durationMin int, slots []string) {
	ver, err := c.rdb.Get(ctx, versionKey(barberID, day)).Result()
	if err == redis.Nil {
		ver = "0"
	} else if err != nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, slotsKey(barberID, day, durationMin, ver), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("availability cache set failed")
	}
}

// InvalidateDay bumps the day's version so every cached duration view
// for that (barber, day) is dropped at once.
func (c *AvailabilityCache) InvalidateDay(ctx context.Context, barberID uint, day string) {
	key := versionKey(barberID, day)
	if err := c.rdb.Incr(ctx, key).Err(); err != nil {
		c.log.Warn().Err(err).Msg("availability cache invalidate failed")
		return
	}
	c.rdb.Expire(ctx, key, 24*time.Hour)
}
