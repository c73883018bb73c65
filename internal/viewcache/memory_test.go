package viewcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	_, ok := cache.Get(ctx, InvoiceListKey)
	assert.False(t, ok)

	cache.Set(ctx, InvoiceListKey, []byte(`[]`), time.Minute)
	val, ok := cache.Get(ctx, InvoiceListKey)
	require.True(t, ok)
	assert.Equal(t, []byte(`[]`), val)
}

func TestMemoryCacheInvalidate(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	cache.Set(ctx, InvoiceListKey, []byte(`[]`), time.Minute)
	cache.Invalidate(ctx, InvoiceListKey)

	_, ok := cache.Get(ctx, InvoiceListKey)
	assert.False(t, ok)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	cache.Set(ctx, InvoiceListKey, []byte(`[]`), 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, ok := cache.Get(ctx, InvoiceListKey)
	assert.False(t, ok)
}
