// Package snapshot keeps the last fetched product collection in Redis so a
// failed fetch can fall back to a stale list.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/inventory-console/internal/config"
	"github.com/rogerio-castellano/inventory-console/internal/models"
)

type Store struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

func New(rdb *redis.Client, key string, ttl time.Duration) *Store {
	return &Store{
		rdb: rdb,
		key: key,
		ttl: ttl,
	}
}

// Connect opens a Redis client for cfg and checks it answers.
func Connect(ctx context.Context, cfg config.RedisConfig) (*Store, error) {
	if !cfg.SnapshotEnabled() {
		return nil, errors.New("redis address not configured")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return New(rdb, cfg.SnapshotKey, cfg.SnapshotTTL), nil
}

// Save replaces the stored collection.
func (s *Store) Save(ctx context.Context, products []models.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load returns the stored collection. ok is false when nothing is stored.
func (s *Store) Load(ctx context.Context) (products []models.Product, ok bool, err error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load snapshot: %w", err)
	}

	if err := json.Unmarshal(data, &products); err != nil {
		return nil, false, fmt.Errorf("decode snapshot: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, true, nil
}

func (s *Store) Close() error {
	return s.rdb.Close()
}
