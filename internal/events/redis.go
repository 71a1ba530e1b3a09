package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisChannel is the Pub/Sub channel page and validation events are
// published on when the config names none. Typical subscribers are render
// caches that drop a page on page.saved / page.deleted.
const DefaultRedisChannel = "cms.events"

// RedisConfig configures RedisSink.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	DSN     string `yaml:"dsn"`
	Channel string `yaml:"channel"`
}

// RedisSink publishes content events via Redis Pub/Sub.
type RedisSink struct {
	Client  *redis.Client
	Channel string
}

// NewRedisSink returns a RedisSink based on config, or nil when the sink is
// disabled or has no DSN.
func NewRedisSink(c RedisConfig) (*RedisSink, error) {
	if !c.Enabled || c.DSN == "" {
		return nil, nil
	}
	opt, err := redis.ParseURL(c.DSN)
	if err != nil {
		return nil, err
	}
	ch := c.Channel
	if ch == "" {
		ch = DefaultRedisChannel
	}
	return &RedisSink{Client: redis.NewClient(opt), Channel: ch}, nil
}

func (s *RedisSink) Emit(ctx context.Context, e Event) error {
	if s == nil || s.Client == nil {
		return nil
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.Client.Publish(ctx, s.Channel, data).Err()
}
