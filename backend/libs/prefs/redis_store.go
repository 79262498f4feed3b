package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps one JSON value per owner under prefs:<owner>.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisStore returns a Redis backed store. A zero ttl keeps values forever.
func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(owner string) string {
	return fmt.Sprintf("prefs:%s", owner)
}

// Load implements Store.
func (s *RedisStore) Load(ctx context.Context, owner string) (Preferences, error) {
	raw, err := s.client.Get(ctx, s.key(owner)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Default(), nil
	}
	if err != nil {
		return Preferences{}, err
	}

	p := Default()
	if err := json.Unmarshal(raw, &p); err != nil {
		return Preferences{}, fmt.Errorf("prefs: decode %s: %w", s.key(owner), err)
	}
	if p.Validate() != nil {
		p.SlotOrder = Default().SlotOrder
	}
	return p, nil
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, owner string, p Preferences) error {
	if err := p.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(owner), data, s.ttl).Err()
}
