package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const availableRoomsKeyFmt = "rooms:available:floor:%d"

var client *redis.Client

// Init initializes the Redis connection. The cache is optional; every
// accessor degrades to a miss when Redis is unavailable.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// Ping reports whether the Redis connection is alive
func Ping(ctx context.Context) bool {
	if client == nil {
		return false
	}
	return client.Ping(ctx).Err() == nil
}

// hashCredentials creates a hash of username+password for the cache key
func hashCredentials(username, password string) string {
	h := sha256.New()
	h.Write([]byte(username + ":" + password))
	return "auth:" + hex.EncodeToString(h.Sum(nil))[:32]
}

// GetCachedAuth checks if credentials are cached and valid
func GetCachedAuth(ctx context.Context, username, password string) (int64, bool) {
	if client == nil {
		return 0, false
	}
	key := hashCredentials(username, password)
	userID, err := client.Get(ctx, key).Int64()
	if err != nil {
		return 0, false
	}
	return userID, true
}

// CacheAuth caches verified credentials for 15 minutes to skip bcrypt
func CacheAuth(ctx context.Context, username, password string, userID int64) {
	if client == nil {
		return
	}
	client.Set(ctx, hashCredentials(username, password), userID, 15*time.Minute)
}

// InvalidateAuth removes cached auth (on password reset or deactivation)
func InvalidateAuth(ctx context.Context, username, password string) {
	if client == nil {
		return
	}
	client.Del(ctx, hashCredentials(username, password))
}

// GetCachedAvailableRooms returns the cached available-rooms JSON for a floor
func GetCachedAvailableRooms(ctx context.Context, floor int) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, fmt.Sprintf(availableRoomsKeyFmt, floor)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheAvailableRooms caches the available-rooms JSON for a floor for 5 minutes
func CacheAvailableRooms(ctx context.Context, floor int, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, fmt.Sprintf(availableRoomsKeyFmt, floor), data, 5*time.Minute)
}

// InvalidateAvailableRooms drops the cached availability for a floor,
// called after every onboarding.
func InvalidateAvailableRooms(ctx context.Context, floor int) {
	if client == nil {
		return
	}
	client.Del(ctx, fmt.Sprintf(availableRoomsKeyFmt, floor))
}
