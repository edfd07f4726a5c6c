package utils

import (
	"context"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cppla/community/config"
)

var (
	redisClient *redis.Client
	redisMu     sync.RWMutex
)

// InitRedis connects the shared client when enabled. An unreachable server leaves
// the client unset so the state store and blacklist fall back to process memory.
func InitRedis(cfg config.AppConfig) {
	if !cfg.RedisEnabled {
		SetRedis(nil)
		return
	}
	rc := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(cfg.RedisHost, strconv.Itoa(cfg.RedisPort)),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		Logger.Warn("redis unreachable, using in-memory stores", zap.Error(err))
		_ = rc.Close()
		SetRedis(nil)
		return
	}
	SetRedis(rc)
}

// SetRedis replaces the shared client. Tests use it to inject or clear a client.
func SetRedis(rc *redis.Client) {
	redisMu.Lock()
	redisClient = rc
	redisMu.Unlock()
}

// GetRedis returns the shared client, or nil when Redis is not in use.
func GetRedis() *redis.Client {
	redisMu.RLock()
	defer redisMu.RUnlock()
	return redisClient
}

// CloseRedis releases the shared client if one is set.
func CloseRedis() error {
	rc := GetRedis()
	if rc == nil {
		return nil
	}
	SetRedis(nil)
	return rc.Close()
}
