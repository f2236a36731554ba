package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"aristobox/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const catalogKey = "aristobox:catalog:active"

type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisClient(addr, password string, db int, ttl time.Duration, log *zap.Logger) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info("Redis connected successfully", zap.String("addr", addr))

	return &RedisClient{
		client: rdb,
		ttl:    ttl,
		log:    log,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// GetKits читает активный каталог; ok=false при промахе.
func (r *RedisClient) GetKits(ctx context.Context) ([]models.Kit, bool, error) {
	data, err := r.client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var kits []models.Kit
	if err := json.Unmarshal(data, &kits); err != nil {
		// битую запись просто выкидываем
		_ = r.client.Del(ctx, catalogKey).Err()
		return nil, false, nil
	}
	return kits, true, nil
}

func (r *RedisClient) SetKits(ctx context.Context, kits []models.Kit) error {
	data, err := json.Marshal(kits)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, catalogKey, data, r.ttl).Err()
}

func (r *RedisClient) InvalidateKits(ctx context.Context) error {
	return r.client.Del(ctx, catalogKey).Err()
}
