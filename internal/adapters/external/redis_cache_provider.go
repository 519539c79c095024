package external

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	redisConnectTimeout = 5 * time.Second
	redisScanBatch      = 100
)

// RedisCacheProviderAdapter stores weather payloads in Redis.
// Every key is namespaced with the configured prefix so Clear never touches foreign keys.
type RedisCacheProviderAdapter struct {
	client  *redis.Client
	prefix  string
	counter hitCounter
}

// NewRedisCacheProviderAdapter connects to Redis and fails when the server does not answer PING
func NewRedisCacheProviderAdapter(cfg *config.RedisConfig) (*RedisCacheProviderAdapter, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewCacheError("failed to connect to Redis at "+cfg.Addr, err)
	}

	return &RedisCacheProviderAdapter{client: client, prefix: cfg.KeyPrefix}, nil
}

func (r *RedisCacheProviderAdapter) key(key string) string {
	return r.prefix + key
}

func (r *RedisCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	defer r.counter.countOperation()

	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	switch {
	case stderrors.Is(err, redis.Nil):
		r.counter.recordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	case err != nil:
		return nil, errors.NewCacheError("redis GET "+key, err)
	}

	r.counter.recordHit()
	return val, nil
}

func (r *RedisCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := checkEntry(key, value, ttl); err != nil {
		return err
	}
	defer r.counter.countOperation()

	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		return errors.NewCacheError("redis SET "+key, err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return errors.NewCacheError("redis DEL "+key, err)
	}
	return nil
}

// Clear deletes the keys under the prefix. Without a prefix the whole logical DB is flushed.
func (r *RedisCacheProviderAdapter) Clear(ctx context.Context) error {
	if r.prefix == "" {
		if err := r.client.FlushDB(ctx).Err(); err != nil {
			return errors.NewCacheError("redis FLUSHDB", err)
		}
		return nil
	}

	iter := r.client.Scan(ctx, 0, r.prefix+"*", redisScanBatch).Iterator()
	batch := make([]string, 0, redisScanBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == redisScanBatch {
			if err := r.client.Del(ctx, batch...).Err(); err != nil {
				return errors.NewCacheError("redis DEL during clear", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return errors.NewCacheError("redis SCAN "+r.prefix+"*", err)
	}
	if len(batch) > 0 {
		if err := r.client.Del(ctx, batch...).Err(); err != nil {
			return errors.NewCacheError("redis DEL during clear", err)
		}
	}
	return nil
}

func (r *RedisCacheProviderAdapter) GetStats() ports.CacheStats {
	return r.counter.stats()
}

func (r *RedisCacheProviderAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewCacheError("failed to close Redis connection", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewCacheError("redis PING", err)
	}
	return nil
}
