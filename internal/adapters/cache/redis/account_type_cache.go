// Package redis implements the account type catalog cache on Redis.
// The catalog is tiny and nearly immutable, so entries live long (24h by
// default) and every cache failure degrades to a database read.
package redis

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/finhub/accounts_service/internal/core/domain"
	portsrepo "github.com/finhub/accounts_service/internal/core/ports/repositories"
	"github.com/finhub/accounts_service/internal/middleware"
	goredis "github.com/redis/go-redis/v9"
)

const (
	typeKeyPrefix = "account_type:"
	typeListKey   = "account_type:all"
)

type accountTypeCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewAccountTypeCache creates the Redis-backed catalog cache. Pass 0 for ttl
// to keep entries until they are explicitly refreshed or evicted.
func NewAccountTypeCache(client *goredis.Client, ttl time.Duration) portsrepo.AccountTypeCache {
	return &accountTypeCache{client: client, ttl: ttl}
}

var _ portsrepo.AccountTypeCache = (*accountTypeCache)(nil)

func typeKey(accountTypeID int) string {
	return typeKeyPrefix + strconv.Itoa(accountTypeID)
}

// Get retrieves one catalog entry. Misses, backend failures and stale
// payloads all come back as a plain "not ok".
func (c *accountTypeCache) Get(ctx context.Context, accountTypeID int) (*domain.AccountType, bool) {
	data, err := c.client.Get(ctx, typeKey(accountTypeID)).Bytes()
	if err != nil {
		return nil, false
	}
	var t domain.AccountType
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, false
	}
	return &t, true
}

// GetList retrieves the whole-catalog entry.
func (c *accountTypeCache) GetList(ctx context.Context) ([]domain.AccountType, bool) {
	data, err := c.client.Get(ctx, typeListKey).Bytes()
	if err != nil {
		return nil, false
	}
	var types []domain.AccountType
	if err := json.Unmarshal(data, &types); err != nil {
		return nil, false
	}
	return types, true
}

// Put stores one catalog entry. Write failures are logged and swallowed.
func (c *accountTypeCache) Put(ctx context.Context, accountType *domain.AccountType) {
	c.set(ctx, typeKey(accountType.ID), accountType)
}

// PutList stores the whole-catalog entry.
func (c *accountTypeCache) PutList(ctx context.Context, accountTypes []domain.AccountType) {
	c.set(ctx, typeListKey, accountTypes)
}

// Evict removes one catalog entry.
func (c *accountTypeCache) Evict(ctx context.Context, accountTypeID int) {
	if err := c.client.Del(ctx, typeKey(accountTypeID)).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("account type cache delete failed",
			"key", typeKey(accountTypeID), "error", err.Error())
	}
}

func (c *accountTypeCache) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("account type cache marshal failed",
			"key", key, "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("account type cache write failed",
			"key", key, "error", err.Error())
	}
}
