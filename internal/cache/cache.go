package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/careslot/clinic-scheduler/internal/config"
)

// Availability listings may be one round trip stale; the ledger re-checks
// at commit time, so a short TTL is enough.
const availabilityTTL = 30 * time.Second

type Cache struct {
	client *redis.Client
}

func New(cfg *config.Config) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	return &Cache{client: client}, nil
}

func availabilityKey(doctorID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", doctorID, date)
}

// GetAvailability returns the cached slots for a doctor/date, or ok=false
// on miss or any redis failure.
func (c *Cache) GetAvailability(ctx context.Context, doctorID uint, date string, out any) bool {
	if c == nil {
		return false
	}
	raw, err := c.client.Get(ctx, availabilityKey(doctorID, date)).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}

func (c *Cache) SetAvailability(ctx context.Context, doctorID uint, date string, slots any) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	c.client.Set(ctx, availabilityKey(doctorID, date), raw, availabilityTTL)
}

// InvalidateAvailability drops the cached listing after a booking or
// status change so the next read reflects the ledger immediately.
func (c *Cache) InvalidateAvailability(ctx context.Context, doctorID uint, date string) {
	if c == nil {
		return
	}
	c.client.Del(ctx, availabilityKey(doctorID, date))
}
