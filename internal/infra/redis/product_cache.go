package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"shop-service/internal/domain"
	"shop-service/internal/infra"
	"shop-service/internal/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultTTL = time.Minute

// Cmdable is the part of the redis client the cache uses.
type Cmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// ProductCache is a read-through product cache. Concurrent misses for one id share a single load.
// A fill that started before an invalidation of the same id is never written back.
type ProductCache struct {
	rdb   Cmdable
	ttl   time.Duration
	group singleflight.Group

	mu  sync.Mutex
	gen map[uint64]uint64
}

var _ infra.ProductCache = (*ProductCache)(nil)

func NewProductCache(rdb Cmdable, ttl time.Duration) *ProductCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &ProductCache{rdb: rdb, ttl: ttl, gen: make(map[uint64]uint64)}
}

// NewClient builds the redis client from a host name.
func NewClient(host string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         host + ":6379",
		DB:           0,
		PoolSize:     20,
		MinIdleConns: 2,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
}

func productKey(id uint64) string {
	return fmt.Sprintf("product:%d", id)
}

func (c *ProductCache) GetProduct(ctx context.Context, id uint64, load func(ctx context.Context) (*domain.Product, error)) (*domain.Product, error) {
	key := productKey(id)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var p domain.Product
		if err := json.Unmarshal(b, &p); err == nil {
			return &p, nil
		}
	} else if err != redis.Nil {
		logger.Warn(ctx, "product cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err, _ := c.group.Do(strconv.FormatUint(id, 10), func() (interface{}, error) {
		gen := c.generation(id)
		// Shared by every waiter, so one caller's cancellation must not fail the rest.
		loadCtx := context.WithoutCancel(ctx)
		p, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		c.store(loadCtx, id, gen, p)
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Product), nil
}

func (c *ProductCache) InvalidateProduct(ctx context.Context, id uint64) {
	c.mu.Lock()
	c.gen[id]++
	c.mu.Unlock()
	c.group.Forget(strconv.FormatUint(id, 10))

	if err := c.rdb.Del(ctx, productKey(id)).Err(); err != nil {
		logger.Warn(ctx, "product cache invalidate failed", zap.Uint64("product_id", id), zap.Error(err))
	}
}

// store writes p unless id was invalidated since gen was read. The lock is held
// across the write so an invalidation either wins the check or deletes after it.
func (c *ProductCache) store(ctx context.Context, id, gen uint64, p *domain.Product) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen[id] != gen {
		return
	}
	if err := c.rdb.Set(ctx, productKey(id), data, c.ttl).Err(); err != nil {
		logger.Warn(ctx, "product cache write failed", zap.Uint64("product_id", id), zap.Error(err))
	}
}

func (c *ProductCache) generation(id uint64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen[id]
}
