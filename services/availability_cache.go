package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"hotel-reservation/models"
)

const (
	availabilityKeyPrefix = "hotel:availability:"
	availabilityGenKey    = availabilityKeyPrefix + "generation"
)

// AvailabilityCache stores search results per requested range. Any write
// to rooms or reservations must call Invalidate.
//
// Get returns the generation it looked under, hit or miss. A result
// computed after that Get must be stored with Set under the same
// generation, so a write that lands in between orphans it.
type AvailabilityCache interface {
	Get(ctx context.Context, checkIn, checkOut models.Date) (rooms []models.Room, gen string, ok bool)
	Set(ctx context.Context, gen string, checkIn, checkOut models.Date, rooms []models.Room)
	Invalidate(ctx context.Context)
}

// NopAvailabilityCache never hits.
type NopAvailabilityCache struct{}

func (NopAvailabilityCache) Get(context.Context, models.Date, models.Date) ([]models.Room, string, bool) {
	return nil, "", false
}
func (NopAvailabilityCache) Set(context.Context, string, models.Date, models.Date, []models.Room) {}
func (NopAvailabilityCache) Invalidate(context.Context)                                        {}

// RedisAvailabilityCache keys entries under a generation counter; bumping
// the counter orphans every older entry, which then expires via its TTL.
// Redis failures are logged and behave like a miss.
type RedisAvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisAvailabilityCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisAvailabilityCache {
	return &RedisAvailabilityCache{client: client, ttl: ttl, logger: logger}
}

func (c *RedisAvailabilityCache) generation(ctx context.Context) (string, error) {
	gen, err := c.client.Get(ctx, availabilityGenKey).Result()
	if errors.Is(err, redis.Nil) {
		return "0", nil
	}
	return gen, err
}

func (c *RedisAvailabilityCache) key(gen string, checkIn, checkOut models.Date) string {
	return fmt.Sprintf("%s%s:%s:%s", availabilityKeyPrefix, gen, checkIn, checkOut)
}

// Get returns an empty generation when the counter cannot be read; Set
// then stores nothing.
func (c *RedisAvailabilityCache) Get(ctx context.Context, checkIn, checkOut models.Date) ([]models.Room, string, bool) {
	gen, err := c.generation(ctx)
	if err != nil {
		c.logger.Warn("availability cache: read generation", zap.Error(err))
		return nil, "", false
	}
	raw, err := c.client.Get(ctx, c.key(gen, checkIn, checkOut)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("availability cache: get", zap.Error(err))
		}
		return nil, gen, false
	}
	var rooms []models.Room
	if err := json.Unmarshal(raw, &rooms); err != nil {
		c.logger.Warn("availability cache: decode", zap.Error(err))
		return nil, gen, false
	}
	return rooms, gen, true
}

func (c *RedisAvailabilityCache) Set(ctx context.Context, gen string, checkIn, checkOut models.Date, rooms []models.Room) {
	if gen == "" {
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	raw, err := json.Marshal(rooms)
	if err != nil {
		c.logger.Warn("availability cache: encode", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, c.key(gen, checkIn, checkOut), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("availability cache: set", zap.Error(err))
	}
}

func (c *RedisAvailabilityCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, availabilityGenKey).Err(); err != nil {
		c.logger.Warn("availability cache: invalidate", zap.Error(err))
	}
}
