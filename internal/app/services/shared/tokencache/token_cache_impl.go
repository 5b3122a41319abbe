package tokencache

import (
	"context"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/exceptions"
	"ecare-automation/internal/pkg/utils"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type tokenCache struct {
	redisRepo contracts.RedisRepository
	fallback  time.Duration
	skew      time.Duration
	now       func() time.Time
	Log       *zap.Logger
}

// NewTokenCache keeps bearer tokens in Redis until shortly before their exp
// claim. Tokens without a readable expiry live for fallback.
func NewTokenCache(repo contracts.RedisRepository, fallback, skew time.Duration, logger *zap.Logger) contracts.TokenCache {
	return &tokenCache{
		redisRepo: repo,
		fallback:  fallback,
		skew:      skew,
		now:       time.Now,
		Log:       logger,
	}
}

func (c *tokenCache) Get(ctx context.Context, tenantID, username string) (string, error) {
	key := tokenKey(tenantID, username)
	raw, err := c.redisRepo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if raw == "" {
		c.Log.Debug("tokenCache.Get miss",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return "", nil
	}

	var token string
	if err := json.Unmarshal([]byte(raw), &token); err != nil {
		return "", exceptions.ErrCannotParseJSON(err)
	}
	return token, nil
}

func (c *tokenCache) Put(ctx context.Context, tenantID, username, token string) error {
	key := tokenKey(tenantID, username)
	ttl := utils.TokenTTL(token, c.now(), c.skew, c.fallback)
	if ttl <= 0 {
		c.Log.Info("tokenCache.Put skipped expired token",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return nil
	}

	if err := c.redisRepo.Set(ctx, key, token, ttl); err != nil {
		return err
	}

	c.Log.Info("tokenCache.Put succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRedisKey, key),
		zap.Duration(constvars.LoggingLockExpirationKey, ttl),
	)
	return nil
}

func (c *tokenCache) Invalidate(ctx context.Context, tenantID, username string) error {
	return c.redisRepo.Delete(ctx, tokenKey(tenantID, username))
}

func tokenKey(tenantID, username string) string {
	return fmt.Sprintf(constvars.RedisTokenKeyFormat, tenantID, username)
}
