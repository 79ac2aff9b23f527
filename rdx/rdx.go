package rdx

import (
	"time"

	"srinufoods/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func Connect(addr, password string) error {
	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return Conn.Ping(globals.Ctx).Err()
}

// BlacklistToken marks a refresh token as revoked until it would have
// expired anyway.
func BlacklistToken(tokenHash string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, "blacklist:"+tokenHash, "1", ttl).Err()
}

func IsTokenBlacklisted(tokenHash string) bool {
	n, err := Conn.Exists(globals.Ctx, "blacklist:"+tokenHash).Result()
	return err == nil && n > 0
}

// CacheUsername keeps a userid → username mapping for quick lookups.
func CacheUsername(userID, username string) error {
	return Conn.Set(globals.Ctx, "users:"+userID, username, 0).Err()
}
