package cache

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DashboardStatsKey = "dashboard:stats"
	dashboardStatsTTL = 2 * time.Minute
)

var client *redis.Client

// Init initializes the Redis connection. On failure the client stays nil and
// every cache call becomes a no-op, so the API keeps working without Redis.
func Init() error {
	host := os.Getenv("REDIS_SERVICE_HOST")
	if host == "" {
		host = "redis"
	}
	port := os.Getenv("REDIS_SERVICE_PORT")
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

// GetClient returns the Redis client, nil when Redis is unavailable
func GetClient() *redis.Client {
	return client
}

// GetCachedDashboardStats returns the cached dashboard snapshot if present
func GetCachedDashboardStats(ctx context.Context) ([]byte, bool) {
	return GetCached(ctx, DashboardStatsKey)
}

// CacheDashboardStats caches the dashboard snapshot for a short window
func CacheDashboardStats(ctx context.Context, data []byte) {
	SetCached(ctx, DashboardStatsKey, data, dashboardStatsTTL)
}

// InvalidateDashboardStats drops the cached snapshot after a write commits
func InvalidateDashboardStats(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, DashboardStatsKey)
}

// GetCached returns cached data for a key
func GetCached(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetCached stores data with a TTL
func SetCached(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, ttl)
}

// IsHealthy returns true if Redis connection is working
func IsHealthy() bool {
	if client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}
