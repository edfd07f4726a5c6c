package utils

import (
	"context"
	"sync"
	"time"
)

// blacklistEntry keeps expiration metadata for a revoked token id.
type blacklistEntry struct {
	expiresAt time.Time
}

var (
	blacklist   = map[string]blacklistEntry{}
	blacklistMu sync.RWMutex
)

// BlacklistToken revokes the token with id jti until expiresAt.
func BlacklistToken(ctx context.Context, jti string, expiresAt time.Time) {
	ttl := time.Until(expiresAt)
	if jti == "" || ttl <= 0 {
		return
	}
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		_ = rc.Set(ctx, "jwt:blacklist:"+jti, "1", ttl).Err()
		return
	}
	blacklistMu.Lock()
	blacklist[jti] = blacklistEntry{expiresAt: expiresAt}
	blacklistMu.Unlock()
}

// IsTokenBlacklisted checks if a token id was revoked before natural expiration.
func IsTokenBlacklisted(ctx context.Context, jti string) bool {
	if jti == "" {
		return false
	}
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		n, err := rc.Exists(ctx, "jwt:blacklist:"+jti).Result()
		// fail open on redis errors to avoid locking every user out
		return err == nil && n > 0
	}
	blacklistMu.RLock()
	entry, ok := blacklist[jti]
	blacklistMu.RUnlock()
	if !ok {
		return false
	}

	if time.Now().After(entry.expiresAt) {
		blacklistMu.Lock()
		delete(blacklist, jti)
		blacklistMu.Unlock()
		return false
	}
	return true
}
