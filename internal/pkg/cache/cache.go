package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Well-known invalidation tags, one per cached entity type.
const (
	TagUser    = "User"
	TagParking = "Parking"
	TagPrice   = "Price"
	TagBooking = "Booking"
	TagPayment = "Payment"
	TagStatus  = "Status"
)

// Cache is a tag-aware read cache on Redis. Every cached key is registered
// in the set of each tag it was stored under; invalidating a tag drops all
// of its keys at once. A nil Cache (or nil client) degrades to always-fill,
// and Redis failures are treated as misses.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a tag-aware cache. client may be nil.
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func tagKey(tag string) string {
	return "cache:tag:" + tag
}

// Remember returns the cached JSON value for key into dest, or runs fill,
// stores its result under key and the given tags, and populates dest.
func (c *Cache) Remember(ctx context.Context, key string, tags []string, dest interface{}, fill func() (interface{}, error)) error {
	if c == nil || c.client == nil {
		return c.fillInto(dest, fill)
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		if uerr := json.Unmarshal(raw, dest); uerr == nil {
			return nil
		}
		// Undecodable entry; fall through and overwrite it.
	} else if err != redis.Nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}

	value, err := fill()
	if err != nil {
		return err
	}

	raw, err = json.Marshal(value)
	if err != nil {
		return err
	}

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, key, raw, c.ttl)
	for _, tag := range tags {
		pipe.SAdd(ctx, tagKey(tag), key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}

	return json.Unmarshal(raw, dest)
}

// InvalidateTags eagerly drops every key stored under the given tags.
// Failures are logged, not surfaced.
func (c *Cache) InvalidateTags(ctx context.Context, tags ...string) {
	if c == nil || c.client == nil {
		return
	}

	for _, tag := range tags {
		keys, err := c.client.SMembers(ctx, tagKey(tag)).Result()
		if err != nil {
			log.Warn().Err(err).Str("tag", tag).Msg("cache tag lookup failed")
			continue
		}
		keys = append(keys, tagKey(tag))
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			log.Warn().Err(err).Str("tag", tag).Msg("cache tag invalidation failed")
		}
	}
}

func (c *Cache) fillInto(dest interface{}, fill func() (interface{}, error)) error {
	value, err := fill()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}
