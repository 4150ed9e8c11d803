package statistics

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ManuelReschke/StudioSite/internal/pkg/cache"
	"github.com/ManuelReschke/StudioSite/internal/pkg/logger"
)

const (
	CacheKeyLeadsTotal  = "statistics:leads:total"
	CacheKeyLeadsDaily  = "statistics:leads:daily:%s" // YYYY-MM-DD
	CacheKeyQuotesTotal = "statistics:quotes:total"
	CacheExpiration     = 30 * time.Minute
)

// Counter is the source of truth the cached figures are computed from.
type Counter interface {
	CountLeads() (int64, error)
	CountLeadsSince(since time.Time) (int64, error)
	CountQuotes() (int64, error)
}

// Store is the key/value cache the figures are kept in.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type redisStore struct{}

func (redisStore) Get(ctx context.Context, key string) (string, error) {
	return cache.Get(ctx, key)
}

func (redisStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return cache.Set(ctx, key, value, expiration)
}

// MemoryStore keeps the figures in process, for setups without redis.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", fmt.Errorf("statistics key %s not cached", key)
	}
	return v, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = fmt.Sprint(value)
	return nil
}

// Data holds the figures shown on the admin dashboard.
type Data struct {
	TotalLeads  int64
	TodayLeads  int64
	TotalQuotes int64
}

type Service struct {
	counter Counter
	store   Store
	now     func() time.Time

	mu         sync.Mutex
	lastUpdate time.Time
	interval   time.Duration
}

func NewService(counter Counter) *Service {
	return NewServiceWithStore(counter, redisStore{})
}

func NewServiceWithStore(counter Counter, store Store) *Service {
	return &Service{
		counter:  counter,
		store:    store,
		now:      time.Now,
		interval: 5 * time.Minute,
	}
}

// Invalidate forces the next Get to recount.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUpdate = time.Time{}
}

// Get returns the cached figures, refreshing them from the counter when
// they are stale or missing.
func (s *Service) Get(ctx context.Context) Data {
	s.mu.Lock()
	stale := s.now().Sub(s.lastUpdate) > s.interval
	s.mu.Unlock()

	if stale {
		if err := s.Update(ctx); err != nil {
			logger.L().Warn("statistics refresh failed", zap.Error(err))
		}
	}

	day := s.now().Format("2006-01-02")
	return Data{
		TotalLeads:  s.readThrough(ctx, CacheKeyLeadsTotal, s.counter.CountLeads),
		TodayLeads:  s.readThrough(ctx, fmt.Sprintf(CacheKeyLeadsDaily, day), s.countToday),
		TotalQuotes: s.readThrough(ctx, CacheKeyQuotesTotal, s.counter.CountQuotes),
	}
}

// Update recounts everything and writes it to the cache.
func (s *Service) Update(ctx context.Context) error {
	total, err := s.counter.CountLeads()
	if err != nil {
		return fmt.Errorf("count leads: %w", err)
	}
	today, err := s.countToday()
	if err != nil {
		return fmt.Errorf("count today's leads: %w", err)
	}
	quotes, err := s.counter.CountQuotes()
	if err != nil {
		return fmt.Errorf("count quotes: %w", err)
	}

	day := s.now().Format("2006-01-02")
	values := map[string]int64{
		CacheKeyLeadsTotal:                   total,
		fmt.Sprintf(CacheKeyLeadsDaily, day): today,
		CacheKeyQuotesTotal:                  quotes,
	}
	for key, v := range values {
		if err := s.store.Set(ctx, key, strconv.FormatInt(v, 10), CacheExpiration); err != nil {
			return fmt.Errorf("cache %s: %w", key, err)
		}
	}

	s.mu.Lock()
	s.lastUpdate = s.now()
	s.mu.Unlock()
	return nil
}

func (s *Service) countToday() (int64, error) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.counter.CountLeadsSince(start)
}

func (s *Service) readThrough(ctx context.Context, key string, count func() (int64, error)) int64 {
	if val, err := s.store.Get(ctx, key); err == nil {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			return n
		}
	}

	n, err := count()
	if err != nil {
		logger.L().Warn("statistics count failed", zap.String("key", key), zap.Error(err))
		return 0
	}
	if err := s.store.Set(ctx, key, strconv.FormatInt(n, 10), CacheExpiration); err != nil {
		logger.L().Debug("statistics cache write failed", zap.String("key", key), zap.Error(err))
	}
	return n
}
