package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore persiste cada slot como una string de Redis bajo su clave.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (r *RedisStore) Write(ctx context.Context, key string, data []byte) error {
	// Sin TTL: el carrito vive hasta que el usuario lo vacía
	return r.client.Set(ctx, key, data, 0).Err()
}
