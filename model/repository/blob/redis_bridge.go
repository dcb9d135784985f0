package blob

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisBridge keeps blobs as plain redis strings under prefix+key.
type RedisBridge struct {
	client *redis.Client
	prefix string
}

func NewRedisBridge(client *redis.Client, prefix string) *RedisBridge {
	return &RedisBridge{client: client, prefix: prefix}
}

func (b *RedisBridge) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := b.client.Get(ctx, b.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return v, err
}

func (b *RedisBridge) Set(ctx context.Context, key string, value []byte) error {
	return b.client.Set(ctx, b.prefix+key, value, 0).Err()
}

func (b *RedisBridge) Remove(ctx context.Context, key string) error {
	return b.client.Del(ctx, b.prefix+key).Err()
}
