package locks

import (
	"context"

	"github.com/redis/rueidis"
)

type RedisLockManager struct {
	client     rueidis.Client
	prefix     string
	ttlSeconds int64
}

func NewRedisLockManager(client rueidis.Client, prefix string, ttlSeconds int64) *RedisLockManager {
	return &RedisLockManager{
		client:     client,
		prefix:     prefix,
		ttlSeconds: ttlSeconds,
	}
}

func (r *RedisLockManager) Acquire(ctx context.Context, recordKey string) error {
	cmd := r.client.B().Set().
		Key(r.prefix + ":" + recordKey).
		Value("1").
		Nx().
		ExSeconds(r.ttlSeconds).
		Build()
	result := r.client.Do(ctx, cmd)

	if err := result.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return ErrRecordBusy
		}
		return err
	}

	return nil
}

func (r *RedisLockManager) Release(ctx context.Context, recordKey string) error {
	cmd := r.client.B().Del().Key(r.prefix + ":" + recordKey).Build()
	return r.client.Do(ctx, cmd).Error()
}
