package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pawararyan169/job-portal/internal/application/auth"
	"github.com/pawararyan169/job-portal/internal/domain"
)

// CachedUserRepo decorates an auth.UserRepo with a Redis cache for GetByID.
// - Read path: Redis -> DB fallback -> Redis set
// - Write path (SetProfileComplete): DB -> Redis delete (best effort)
// Redis failures never fail the request; the DB stays the source of truth.
type CachedUserRepo struct {
	inner   auth.UserRepo
	rdb     *goredis.Client
	ttl     time.Duration
	keyPref string
}

func NewCachedUserRepo(inner auth.UserRepo, client *Client, ttl time.Duration) *CachedUserRepo {
	var rdb *goredis.Client
	if client != nil {
		rdb = client.rdb
	}
	return &CachedUserRepo{
		inner:   inner,
		rdb:     rdb,
		ttl:     ttl,
		keyPref: "user:",
	}
}

func (c *CachedUserRepo) key(userID string) string {
	return c.keyPref + userID
}

func (c *CachedUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	// 1) Try Redis
	if c.rdb != nil {
		s, err := c.rdb.Get(ctx, c.key(id)).Result()
		if err == nil {
			var u domain.User
			if uerr := json.Unmarshal([]byte(s), &u); uerr == nil {
				return u, nil
			}
			// corrupt entry -> fall back to DB
		} else if err != goredis.Nil {
			// redis error -> fall back to DB (do NOT fail the request)
		}
	}

	// 2) DB source of truth
	u, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	// 3) Best-effort cache fill
	if c.rdb != nil {
		if b, merr := json.Marshal(u); merr == nil {
			_ = c.rdb.Set(ctx, c.key(id), b, c.ttl).Err()
		}
	}

	return u, nil
}

// GetByEmail always hits the DB: the login path needs the freshest hash
// and must not be observable through cache timing.
func (c *CachedUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return c.inner.GetByEmail(ctx, email)
}

func (c *CachedUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	return c.inner.Create(ctx, u)
}

func (c *CachedUserRepo) SetProfileComplete(ctx context.Context, userID string) error {
	if err := c.inner.SetProfileComplete(ctx, userID); err != nil {
		return err
	}

	// Best-effort invalidation; a stale read self-heals at TTL expiry.
	if c.rdb != nil {
		_ = c.rdb.Del(ctx, c.key(userID)).Err()
	}
	return nil
}
