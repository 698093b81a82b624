package rates

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Store is a shared key/value backend for quote snapshots. Implementations
// must expire entries after the TTL passed to Set.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// MemoryStore is an in-process Store, used by default and in tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return "", false
	}
	return entry.value, true
}

func (m *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

const quoteStoreKey = "ontaff:rates"

// QuoteCache holds the last fetched quote set with its fetch timestamp and
// refreshes through the Source once the TTL lapses. An optional shared Store
// (redis in multi-process deployments) is consulted before hitting the
// Source. Callers pass the clock in, so freshness decisions stay
// deterministic and testable.
type QuoteCache struct {
	source Source
	store  Store
	ttl    time.Duration
	logger *zap.Logger

	mu        sync.Mutex
	quotes    []Quote
	fetchedAt time.Time
}

// NewQuoteCache creates a cache over the given source. store may be nil.
func NewQuoteCache(source Source, store Store, ttl time.Duration, logger *zap.Logger) *QuoteCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteCache{source: source, store: store, ttl: ttl, logger: logger}
}

// GetOrRefresh returns the cached quotes when still fresh at now, otherwise
// refreshes from the shared store or the source.
func (qc *QuoteCache) GetOrRefresh(ctx context.Context, now time.Time) ([]Quote, error) {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	if qc.quotes != nil && now.Sub(qc.fetchedAt) < qc.ttl {
		return qc.quotes, nil
	}

	if qc.store != nil {
		if raw, ok := qc.store.Get(ctx, quoteStoreKey); ok {
			var quotes []Quote
			if err := json.Unmarshal([]byte(raw), &quotes); err == nil {
				qc.quotes = quotes
				qc.fetchedAt = now
				qc.logger.Debug("rate quotes loaded from shared store",
					zap.Int("count", len(quotes)))
				return qc.quotes, nil
			}
			qc.logger.Warn("discarding malformed rate snapshot from shared store")
		}
	}

	quotes, err := qc.source.Fetch(ctx)
	if err != nil {
		// Serve stale quotes rather than nothing.
		if qc.quotes != nil {
			qc.logger.Warn("rate refresh failed, serving stale quotes",
				zap.Error(err),
				zap.Time("fetched_at", qc.fetchedAt))
			return qc.quotes, nil
		}
		return nil, err
	}

	qc.quotes = quotes
	qc.fetchedAt = now
	qc.logger.Info("rate quotes refreshed",
		zap.Int("count", len(quotes)),
		zap.Time("fetched_at", now))

	if qc.store != nil {
		if raw, err := json.Marshal(quotes); err == nil {
			if err := qc.store.Set(ctx, quoteStoreKey, string(raw), qc.ttl); err != nil {
				qc.logger.Warn("failed to publish rate snapshot to shared store", zap.Error(err))
			}
		}
	}

	return qc.quotes, nil
}
