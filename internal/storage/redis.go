package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/urgences_dashboard/internal/models"
)

// RedisKV - реализация KV поверх Redis. Update использует WATCH/MULTI.
type RedisKV struct {
	client     *redis.Client
	maxRetries int
}

// NewRedisKV создает новый RedisKV
func NewRedisKV(client *redis.Client, maxRetries int) *RedisKV {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &RedisKV{
		client:     client,
		maxRetries: maxRetries,
	}
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s from redis: %w", key, err)
	}
	return val, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s in redis: %w", key, err)
	}
	return nil
}

func (r *RedisKV) SetNX(ctx context.Context, key string, value []byte) (bool, error) {
	ok, err := r.client.SetNX(ctx, key, value, 0).Result()
	if err != nil {
		return false, fmt.Errorf("failed to setnx %s in redis: %w", key, err)
	}
	return ok, nil
}

func (r *RedisKV) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if !errors.Is(err, redis.Nil) {
				return err
			}
			current = nil
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		// Запись выполнится только если ключ не изменился с момента WATCH
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, next, 0)
			return nil
		})
		return err
	}

	for i := 0; i < r.maxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("update of %s gave up after %d attempts: %w", key, r.maxRetries, models.ErrConflict)
}
