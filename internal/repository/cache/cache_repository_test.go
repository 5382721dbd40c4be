package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/horus-listing/internal/domain"
	"github.com/horus-listing/internal/repository/cache"
)

// newRedisClient подключается к TEST_REDIS_ADDR, без него тест пропускается
func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set, skipping Redis integration tests")
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	require.NoError(t, client.Ping(context.Background()).Err())
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCacheRepository_LookupRoundTrip(t *testing.T) {
	client := newRedisClient(t)
	repo := cache.NewCacheRepositoryWithClient(client, zap.NewNop())
	ctx := context.Background()

	lookup := &domain.PropertyLookup{Code: "Horus042", Location: "القاهرة", Project: "فيلا", Area: 300, Rooms: 4, Price: 1e6}
	t.Cleanup(func() { _ = repo.DeleteLookup(ctx, lookup.Code) })

	miss, err := repo.GetLookup(ctx, lookup.Code)
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, repo.SetLookup(ctx, lookup, time.Minute))

	got, err := repo.GetLookup(ctx, lookup.Code)
	require.NoError(t, err)
	assert.Equal(t, lookup, got)

	ttl, err := client.TTL(ctx, "horus:property:code:Horus042").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, repo.DeleteLookup(ctx, lookup.Code))
	got, err = repo.GetLookup(ctx, lookup.Code)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheRepository_Stats(t *testing.T) {
	client := newRedisClient(t)
	repo := cache.NewCacheRepositoryWithClient(client, zap.NewNop())
	ctx := context.Background()
	t.Cleanup(func() { _ = repo.DeleteStats(ctx) })

	stats := &domain.PropertyStats{Total: 3, ForSale: 2, ForRent: 1, TotalValue: 2500}
	require.NoError(t, repo.SetStats(ctx, stats, time.Minute))

	got, err := repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats, got)

	require.NoError(t, repo.DeleteStats(ctx))
	got, err = repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheRepository_CorruptEntry(t *testing.T) {
	client := newRedisClient(t)
	repo := cache.NewCacheRepositoryWithClient(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "horus:property:code:Broken", "{not json", time.Minute).Err())
	t.Cleanup(func() { _ = client.Del(ctx, "horus:property:code:Broken").Err() })

	_, err := repo.GetLookup(ctx, "Broken")
	assert.Error(t, err)
}

func TestCacheRepository_UnreachableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	repo := cache.NewCacheRepositoryWithClient(client, zap.NewNop())

	_, err := repo.GetLookup(context.Background(), "Horus001")
	assert.Error(t, err)
	assert.Error(t, repo.DeleteStats(context.Background()))
	assert.NoError(t, repo.Delete(context.Background()))
}
