package utils

import (
	"context"
	"log"
	"time"

	"servicehub/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// CacheAuthToken stores the SHA-256 hash of a session token keyed by subject
// so middleware can check revocation without hitting Mongo.
func CacheAuthToken(client *redis.Client, subject, tokenHash string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Set(ctx, "authToken:"+subject, tokenHash, ttl).Err()
}

// GetCachedAuthToken fetches the cached token hash for a subject. An empty
// string with nil error means no session is cached.
func GetCachedAuthToken(client *redis.Client, subject string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	val, err := client.Get(ctx, "authToken:"+subject).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

// RevokeAuthToken drops the cached session for a subject.
func RevokeAuthToken(client *redis.Client, subject string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Del(ctx, "authToken:"+subject).Err()
}
