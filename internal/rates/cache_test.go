package rates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	fetches int
	err     error
}

func (c *countingSource) Fetch(_ context.Context) ([]Quote, error) {
	c.fetches++
	if c.err != nil {
		return nil, c.err
	}
	return []Quote{
		q("Lender A", 4.50, KindFixed),
		q("Lender B", 5.60, KindVariable),
	}, nil
}

func TestStaticSourceFetch(t *testing.T) {
	quotes, err := StaticSource{}.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 16)

	// Each lender posts one fixed and one variable quote.
	fixed, variable := 0, 0
	for _, quote := range quotes {
		assert.NotEmpty(t, quote.Lender)
		assert.True(t, quote.RatePercent.GreaterThan(decimal.Zero))
		switch quote.Kind {
		case KindFixed:
			fixed++
		case KindVariable:
			variable++
		}
	}
	assert.Equal(t, 8, fixed)
	assert.Equal(t, 8, variable)

	// A returned copy must not alias the fallback table.
	quotes[0].Lender = "mutated"
	again, err := StaticSource{}.Fetch(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again[0].Lender)
}

func TestBest(t *testing.T) {
	quotes, err := StaticSource{}.Fetch(context.Background())
	require.NoError(t, err)

	best, ok := Best(quotes, KindFixed)
	require.True(t, ok)
	assert.Equal(t, "Tangerine", best.Lender)
	assert.True(t, best.RatePercent.Equal(decimal.NewFromFloat(4.74)))

	best, ok = Best(quotes, KindVariable)
	require.True(t, ok)
	assert.Equal(t, "Tangerine", best.Lender)
	assert.True(t, best.RatePercent.Equal(decimal.NewFromFloat(5.85)))

	_, ok = Best(nil, KindFixed)
	assert.False(t, ok)

	_, ok = Best([]Quote{q("Only Fixed", 4.5, KindFixed)}, KindVariable)
	assert.False(t, ok)
}

func TestQuoteCacheFreshness(t *testing.T) {
	source := &countingSource{}
	cache := NewQuoteCache(source, nil, time.Hour, nil)

	ctx := context.Background()
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	quotes, err := cache.GetOrRefresh(ctx, t0)
	require.NoError(t, err)
	assert.Len(t, quotes, 2)
	assert.Equal(t, 1, source.fetches)

	// Within the TTL the cached set is served without refetching.
	_, err = cache.GetOrRefresh(ctx, t0.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, source.fetches)

	// Past the TTL the source is consulted again.
	_, err = cache.GetOrRefresh(ctx, t0.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, source.fetches)
}

func TestQuoteCacheServesStaleOnFetchFailure(t *testing.T) {
	source := &countingSource{}
	cache := NewQuoteCache(source, nil, time.Hour, nil)

	ctx := context.Background()
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	first, err := cache.GetOrRefresh(ctx, t0)
	require.NoError(t, err)

	source.err = errors.New("feed unavailable")
	stale, err := cache.GetOrRefresh(ctx, t0.Add(2*time.Hour))
	require.NoError(t, err, "stale quotes must be served when the refresh fails")
	assert.Equal(t, first, stale)
}

func TestQuoteCacheErrorWithNothingCached(t *testing.T) {
	source := &countingSource{err: errors.New("feed unavailable")}
	cache := NewQuoteCache(source, nil, time.Hour, nil)

	_, err := cache.GetOrRefresh(context.Background(), time.Now())
	require.Error(t, err)
}

func TestQuoteCacheSharedStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	// First process fetches and publishes the snapshot.
	first := &countingSource{}
	cacheA := NewQuoteCache(first, store, time.Hour, nil)
	_, err := cacheA.GetOrRefresh(ctx, t0)
	require.NoError(t, err)
	require.Equal(t, 1, first.fetches)

	// Second process warms from the store without touching its source.
	second := &countingSource{}
	cacheB := NewQuoteCache(second, store, time.Hour, nil)
	quotes, err := cacheB.GetOrRefresh(ctx, t0)
	require.NoError(t, err)
	assert.Equal(t, 0, second.fetches)
	assert.Len(t, quotes, 2)
	assert.Equal(t, "Lender A", quotes[0].Lender)
}

func TestQuoteCacheMalformedStoreSnapshot(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "ontaff:rates", "{not json", time.Hour))

	source := &countingSource{}
	cache := NewQuoteCache(source, store, time.Hour, nil)

	quotes, err := cache.GetOrRefresh(ctx, time.Now())
	require.NoError(t, err)
	assert.Len(t, quotes, 2)
	assert.Equal(t, 1, source.fetches, "malformed snapshot falls through to the source")
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v", 50*time.Millisecond))
	value, ok := store.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "v", value)

	time.Sleep(60 * time.Millisecond)
	_, ok = store.Get(ctx, "k")
	assert.False(t, ok)

	_, ok = store.Get(ctx, "missing")
	assert.False(t, ok)
}
