package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/murkotick/menswear-storefront/internal/pkg/committer"
)

// RedisBackend stores each entry as a plain Redis string. A plan is applied in
// one MULTI/EXEC block.
type RedisBackend struct {
	client *redis.Client
}

func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

// DialRedis connects and pings the server at addr.
func DialRedis(ctx context.Context, addr string) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("kvstore: redis ping %s: %w", addr, err)
	}
	return NewRedisBackend(client), nil
}

func (r *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *RedisBackend) Apply(ctx context.Context, plan *committer.Plan) error {
	if plan.IsEmpty() {
		return nil
	}
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, w := range plan.Writes() {
			pipe.Set(ctx, w.Key, w.Value, 0)
		}
		return nil
	})
	return err
}

func (r *RedisBackend) Close() error {
	return r.client.Close()
}
