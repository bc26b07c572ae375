package cache

import (
	"context"
	"testing"
	"time"
)

// Without Init every call must degrade to a no-op instead of panicking.
func TestCacheUnavailable(t *testing.T) {
	ctx := context.Background()

	if IsHealthy() {
		t.Error("IsHealthy = true with no client")
	}
	if _, ok := GetCached(ctx, "some:key"); ok {
		t.Error("GetCached reported a hit with no client")
	}
	SetCached(ctx, "some:key", []byte("x"), time.Minute)

	if _, ok := GetCachedDashboardStats(ctx); ok {
		t.Error("GetCachedDashboardStats reported a hit with no client")
	}
	CacheDashboardStats(ctx, []byte("{}"))
	InvalidateDashboardStats(ctx)
}
