package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"secret-casino-bot/internal/domain"
	"secret-casino-bot/internal/engine"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}

// RedisSnapshotRepo keeps each snapshot as a plain string value under its
// namespace key.
type RedisSnapshotRepo struct {
	rdb redis.UniversalClient
}

func NewRedisSnapshotRepo(rdb redis.UniversalClient) *RedisSnapshotRepo {
	return &RedisSnapshotRepo{rdb: rdb}
}

func (r *RedisSnapshotRepo) Load(ctx context.Context, key string) (*domain.Snapshot, error) {
	payload, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, engine.ErrSnapshotNotFound
		}
		return nil, err
	}
	return DecodeSnapshot(payload)
}

func (r *RedisSnapshotRepo) Save(ctx context.Context, key string, snap domain.Snapshot) error {
	payload, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, key, payload, 0).Err()
}

func (r *RedisSnapshotRepo) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, key).Err()
}
