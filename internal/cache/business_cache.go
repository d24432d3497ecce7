package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/md-rashed-zaman/bookinglite/internal/model"
	"github.com/md-rashed-zaman/bookinglite/internal/storage"
)

// CachedBusinessStore is a read-through cache over the business store's
// list path. Redis failures are logged and fall open to the database, so
// the cache never affects correctness.
type CachedBusinessStore struct {
	store  storage.BusinessStore
	rdb    *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

func NewCachedBusinessStore(store storage.BusinessStore, rdb *redis.Client, logger *slog.Logger) *CachedBusinessStore {
	return &CachedBusinessStore{
		store:  store,
		rdb:    rdb,
		logger: logger,
		ttl:    5 * time.Minute,
	}
}

func listKey(ownerID string) string {
	if ownerID == "" {
		return "businesses:all"
	}
	return "businesses:owner:" + ownerID
}

func (c *CachedBusinessStore) List(ctx context.Context, ownerID string) ([]model.Business, error) {
	key := listKey(ownerID)

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var businesses []model.Business
		if err := json.Unmarshal(data, &businesses); err == nil {
			return businesses, nil
		}
		c.logger.Warn("cached business list unreadable, falling back to db", "key", key)
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("redis get failed, falling back to db", "err", err)
	}

	businesses, err := c.store.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(businesses); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("redis set failed", "err", err)
		}
	}
	return businesses, nil
}

func (c *CachedBusinessStore) Create(ctx context.Context, b model.Business) error {
	if err := c.store.Create(ctx, b); err != nil {
		return err
	}
	c.invalidate(ctx, b.OwnerID)
	return nil
}

func (c *CachedBusinessStore) NameExists(ctx context.Context, name string) (bool, error) {
	return c.store.NameExists(ctx, name)
}

func (c *CachedBusinessStore) Update(ctx context.Context, id string, fields map[string]string) error {
	if err := c.store.Update(ctx, id, fields); err != nil {
		return err
	}
	// The owner of the updated row is unknown here; drop every list key.
	c.invalidateAll(ctx)
	return nil
}

func (c *CachedBusinessStore) Delete(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidateAll(ctx)
	return nil
}

func (c *CachedBusinessStore) invalidate(ctx context.Context, ownerID string) {
	keys := []string{listKey("")}
	if ownerID != "" {
		keys = append(keys, listKey(ownerID))
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("redis del failed", "err", err)
	}
}

func (c *CachedBusinessStore) invalidateAll(ctx context.Context) {
	iter := c.rdb.Scan(ctx, 0, "businesses:*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("redis scan failed", "err", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("redis del failed", "err", err)
	}
}
