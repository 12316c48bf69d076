package productcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bakery/internal/core/domain/model/product"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL  = 5 * time.Minute
	NotFoundTTL = time.Minute

	notFoundMarker = "notfound"
)

// Key is the Redis key holding product id.
func Key(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

// GenerationKey counts the invalidations of product id. A fill is written only
// while the counter still holds the value read before loading from the store.
func GenerationKey(id int64) string {
	return fmt.Sprintf("product:%d:gen", id)
}

var errStaleFill = errors.New("product invalidated while loading")

// snapshot is the cached form of a product.
type snapshot struct {
	ID      int64           `json:"id"`
	Version int             `json:"version"`
	Details product.Details `json:"details"`
}

// RedisProductCache implements ports.ProductReader and ports.ProductCache.
type RedisProductCache struct {
	reader ports.ProductReader
	redis  *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisProductCache wraps reader. A non-positive ttl means DefaultTTL.
func NewRedisProductCache(reader ports.ProductReader, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisProductCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisProductCache{
		reader: reader,
		redis:  rdb,
		ttl:    ttl,
		logger: logger.With("component", "product_cache"),
	}
}

// Get serves the product from Redis when present and falls back to the reader.
func (c *RedisProductCache) Get(ctx context.Context, id int64) (*product.Product, error) {
	key := Key(id)

	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if string(data) == notFoundMarker {
			return nil, errs.NewObjectNotFoundError("product", id)
		}

		var cached snapshot
		if err = json.Unmarshal(data, &cached); err != nil {
			c.logger.WarnContext(ctx, "discarding unreadable cache entry", "key", key, "error", err)
			break
		}
		return product.RestoreProduct(cached.ID, cached.Version, cached.Details), nil

	case errors.Is(err, redis.Nil):

	default:
		c.logger.WarnContext(ctx, "redis read failed, reading from store", "key", key, "error", err)
	}

	gen, err := c.redis.Get(ctx, GenerationKey(id)).Result()
	canFill := err == nil || errors.Is(err, redis.Nil)
	if !canFill {
		c.logger.WarnContext(ctx, "redis generation read failed, not filling", "key", key, "error", err)
	}

	p, err := c.reader.Get(ctx, id)
	if err != nil {
		if canFill && errors.Is(err, errs.ErrObjectNotFound) {
			c.fill(ctx, id, gen, notFoundMarker, NotFoundTTL)
		}
		return nil, err
	}

	payload, err := json.Marshal(snapshot{ID: p.ID(), Version: p.Version(), Details: p.Details()})
	if err != nil {
		c.logger.WarnContext(ctx, "cannot encode product for cache", "key", key, "error", err)
		return p, nil
	}

	if canFill {
		c.fill(ctx, id, gen, payload, c.ttl)
	}
	return p, nil
}

// Invalidate drops the cached entry, hit or miss, for id and bumps its
// generation so that a load already in flight does not write its result back.
func (c *RedisProductCache) Invalidate(ctx context.Context, id int64) {
	key := Key(id)
	_, err := c.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, GenerationKey(id))
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		c.logger.WarnContext(ctx, "redis invalidation failed", "key", key, "error", err)
	}
}

// fill writes value under the product key unless the generation moved past gen.
func (c *RedisProductCache) fill(ctx context.Context, id int64, gen string, value any, ttl time.Duration) {
	key, genKey := Key(id), GenerationKey(id)

	err := c.redis.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return errStaleFill
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, value, ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleFill), errors.Is(err, redis.TxFailedErr):
		c.logger.DebugContext(ctx, "skipping stale cache fill", "key", key)
	default:
		c.logger.WarnContext(ctx, "redis write failed", "key", key, "error", err)
	}
}

// Nop reads straight from the reader and ignores invalidations. It is used
// when no Redis address is configured.
type Nop struct {
	reader ports.ProductReader
}

func NewNop(reader ports.ProductReader) Nop {
	return Nop{reader: reader}
}

func (n Nop) Get(ctx context.Context, id int64) (*product.Product, error) {
	return n.reader.Get(ctx, id)
}

func (Nop) Invalidate(context.Context, int64) {}
