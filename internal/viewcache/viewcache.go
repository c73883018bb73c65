// Package viewcache caches rendered view payloads so mutations can mark
// them stale. Misses and backend failures both read as "not cached".
package viewcache

import (
	"context"
	"time"
)

// InvoiceListKey is the cached invoice-listing view, invalidated by every
// invoice mutation.
const InvoiceListKey = "/dashboard/invoices"

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Invalidate(ctx context.Context, key string)
}
