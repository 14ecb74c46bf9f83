package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/varis/taskboard/internal/application/task"
	"github.com/varis/taskboard/internal/domain"
)

// CachedTaskRepo decorates a task.TaskRepo with a per-task Redis cache.
// - Read path: Redis -> DB fallback -> Redis set
// - Write path: DB -> Redis set/del (best effort)
// Redis problems never fail a request; the DB stays the source of truth.
type CachedTaskRepo struct {
	inner   task.TaskRepo
	rdb     *goredis.Client
	ttl     time.Duration
	keyPref string
}

func NewCachedTaskRepo(inner task.TaskRepo, client *Client, ttl time.Duration) *CachedTaskRepo {
	var rdb *goredis.Client
	if client != nil {
		rdb = client.rdb
	}
	return &CachedTaskRepo{
		inner:   inner,
		rdb:     rdb,
		ttl:     ttl,
		keyPref: "task:",
	}
}

func (c *CachedTaskRepo) key(id string) string {
	return c.keyPref + id
}

func (c *CachedTaskRepo) cacheSet(ctx context.Context, t domain.Task) {
	if c.rdb == nil {
		return
	}
	if b, err := json.Marshal(t); err == nil {
		_ = c.rdb.Set(ctx, c.key(t.ID), b, c.ttl).Err()
	}
}

func (c *CachedTaskRepo) GetByID(ctx context.Context, id string) (domain.Task, error) {
	if c.rdb != nil {
		s, err := c.rdb.Get(ctx, c.key(id)).Result()
		if err == nil {
			var t domain.Task
			if uerr := json.Unmarshal([]byte(s), &t); uerr == nil && t.ID == id {
				return t, nil
			}
			// corrupt entry -> drop it and fall back to DB
			_ = c.rdb.Del(ctx, c.key(id)).Err()
		}
		// goredis.Nil or a redis error both fall through to the DB
	}

	t, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	c.cacheSet(ctx, t)
	return t, nil
}

func (c *CachedTaskRepo) Create(ctx context.Context, t domain.Task) (domain.Task, error) {
	created, err := c.inner.Create(ctx, t)
	if err != nil {
		return domain.Task{}, err
	}
	c.cacheSet(ctx, created)
	return created, nil
}

func (c *CachedTaskRepo) Update(ctx context.Context, t domain.Task) (domain.Task, error) {
	updated, err := c.inner.Update(ctx, t)
	if err != nil {
		return domain.Task{}, err
	}
	// SET beats DEL: next read sees the fresh row without a DB trip
	c.cacheSet(ctx, updated)
	return updated, nil
}

func (c *CachedTaskRepo) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	if c.rdb != nil {
		_ = c.rdb.Del(ctx, c.key(id)).Err()
	}
	return nil
}

// Listings always hit the store; per-task entries cannot answer
// ordering or join queries.

func (c *CachedTaskRepo) ListByOwner(ctx context.Context, userID string) ([]domain.Task, error) {
	return c.inner.ListByOwner(ctx, userID)
}

func (c *CachedTaskRepo) ListAllWithOwners(ctx context.Context) ([]domain.TaskWithOwner, error) {
	return c.inner.ListAllWithOwners(ctx)
}
