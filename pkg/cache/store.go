package cache

import (
	"context"
	"encoding/json"
	"time"

	"handoff-address/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// Store keeps JSON encoded values in Redis.
type Store struct {
	client redis.Cmdable
}

func NewStore(client redis.Cmdable) *Store {
	return &Store{client: client}
}

// store a value in the cache with the given key and expiration time.
func (s *Store) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		IncrementError("set_marshal")
		logger.GlobalLogger.Errorf("failed to marshal value for key %s: %v", key, err)
		return NewCacheError("marshal", err, false)
	}

	start := time.Now()
	err = s.client.Set(ctx, key, data, expiration).Err()
	RecordOperationDuration("set", start)
	if err != nil {
		IncrementError("set")
		logger.GlobalLogger.Errorf("failed to set key %s: %v", key, err)
		return NewCacheError("set", err, true)
	}
	return nil
}

// retrieve a value and unmarshal it into dest. A missing key yields ErrMiss.
func (s *Store) Get(ctx context.Context, key string, dest interface{}) error {
	start := time.Now()
	val, err := s.client.Get(ctx, key).Bytes()
	RecordOperationDuration("get", start)
	if err == redis.Nil {
		return ErrMiss
	}
	if err != nil {
		IncrementError("get")
		logger.GlobalLogger.Errorf("failed to get key %s: %v", key, err)
		return NewCacheError("get", err, true)
	}

	if err := json.Unmarshal(val, dest); err != nil {
		IncrementError("get_unmarshal")
		logger.GlobalLogger.Errorf("failed to unmarshal value for key %s: %v", key, err)
		return NewCacheError("unmarshal", err, false)
	}
	return nil
}

// remove keys from the cache.
func (s *Store) Delete(ctx context.Context, keys ...string) error {
	start := time.Now()
	err := s.client.Del(ctx, keys...).Err()
	RecordOperationDuration("delete", start)
	if err != nil {
		IncrementError("delete")
		logger.GlobalLogger.Errorf("failed to delete keys %v: %v", keys, err)
		return NewCacheError("delete", err, true)
	}
	return nil
}

// check if a key exists in the cache.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	start := time.Now()
	count, err := s.client.Exists(ctx, key).Result()
	RecordOperationDuration("exists", start)
	if err != nil {
		IncrementError("exists")
		logger.GlobalLogger.Errorf("failed to check existence of key %s: %v", key, err)
		return false, NewCacheError("exists", err, true)
	}
	return count > 0, nil
}
