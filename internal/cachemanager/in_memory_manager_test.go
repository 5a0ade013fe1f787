package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type lookupKey string

type signatureInfo struct {
	Name   string
	Params []string
}

func TestNewInMemoryCacheManager(t *testing.T) {
	require.NotPanics(t, func() {
		NewInMemoryCacheManager[string, string]("test", NoExpiration, DefaultCleanupInterval)
	})
}

func TestInMemoryCacheManager_GetExistingValue_StructType(t *testing.T) {
	cache := NewInMemoryCacheManager[lookupKey, signatureInfo]("signatures", NoExpiration, DefaultCleanupInterval)
	info := signatureInfo{Name: "map", Params: []string{"callback", "thisArg"}}
	cache.Set(context.Background(), "map", info, NoExpiration)

	got, ok := cache.Get(context.Background(), "map")
	require.True(t, ok)
	require.Equal(t, info, got)
}

func TestInMemoryCacheManager_GetWithNoExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("names", NoExpiration, DefaultCleanupInterval)

	got, ok := cache.Get(context.Background(), "map")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetWithExistingInvalidValueType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("names", NoExpiration, DefaultCleanupInterval)

	cache.cache.Set("map", 123, NoExpiration)

	got, ok := cache.Get(context.Background(), "map")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_Expiry(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("names", NoExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "map", "map(callback)", time.Millisecond)

	time.Sleep(5 * time.Millisecond)

	_, ok := cache.Get(context.Background(), "map")
	require.False(t, ok, "expired items are not returned")
}

func TestInMemoryCacheManager_Flush(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("names", NoExpiration, DefaultCleanupInterval)
	ctx := context.Background()

	cache.Set(ctx, "map", "a", NoExpiration)
	cache.Set(ctx, "filter", "b", NoExpiration)
	require.Equal(t, 2, cache.ItemCount())

	require.NoError(t, cache.Flush(ctx))
	require.Equal(t, 0, cache.ItemCount())
	_, ok := cache.Get(ctx, "map")
	require.False(t, ok)
}
