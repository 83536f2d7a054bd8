// Package query mediates between the UI surfaces and the session repository:
// results are cached under structured keys with per-kind staleness windows,
// mutations invalidate exactly the entries they can affect, and an optimistic
// update variant mirrors a write into the cache before the store confirms it.
package query

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/HERYORDEJY/FitQii/internal/db"
	"github.com/HERYORDEJY/FitQii/internal/models"
)

// Store is the repository surface the client consumes. *db.Repository
// satisfies it; tests substitute a counting stub.
type Store interface {
	GetAll(ctx context.Context) ([]models.Session, error)
	GetByID(ctx context.Context, id uint) (*models.Session, error)
	Insert(ctx context.Context, req db.CreateSessionRequest) (*models.Session, error)
	Update(ctx context.Context, id uint, req db.UpdateSessionRequest) (*models.Session, error)
	Delete(ctx context.Context, id uint) error
	TodaySessions(ctx context.Context) ([]models.Session, error)
	WeekSessions(ctx context.Context, q db.WeekQuery) ([]db.DayBucket, error)
	PastSessions(ctx context.Context, search string) ([]db.DayBucket, error)
	SessionsInRange(ctx context.Context, start, end time.Time) ([]models.Session, error)
	SessionsByDate(ctx context.Context, date time.Time) ([]models.Session, error)
	Count(ctx context.Context) (int64, error)
	HealthCheck(ctx context.Context) bool
}

// Staleness holds how long each query kind stays fresh in cache. A stale
// entry is refetched on the next read.
type Staleness struct {
	Today  time.Duration
	Week   time.Duration
	Past   time.Duration
	List   time.Duration
	Detail time.Duration
	ByDate time.Duration
	Range  time.Duration
	Count  time.Duration
}

// DefaultStaleness mirrors the windows the mobile client shipped with: the
// day-bucket views refresh more eagerly than the slower-moving lists.
func DefaultStaleness() Staleness {
	return Staleness{
		Today:  2 * time.Minute,
		Week:   2 * time.Minute,
		Past:   2 * time.Minute,
		List:   5 * time.Minute,
		Detail: 5 * time.Minute,
		ByDate: 5 * time.Minute,
		Range:  5 * time.Minute,
		Count:  10 * time.Minute,
	}
}

// Config tunes the client.
type Config struct {
	Staleness Staleness
	// StoreTimeout bounds every repository call issued by the client.
	StoreTimeout time.Duration
	// RefreshInterval is the default auto-refresh cadence for subscriptions.
	RefreshInterval time.Duration
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Staleness:       DefaultStaleness(),
		StoreTimeout:    10 * time.Second,
		RefreshInterval: 5 * time.Minute,
	}
}

// Client wraps a Store with caching and invalidation. It never mutates
// persisted state itself; only cache mirrors.
type Client struct {
	store  Store
	cache  *gocache.Cache
	cfg    Config
	logger *zap.Logger

	mu   sync.Mutex
	subs map[string]context.CancelFunc
}

// NewClient builds a client around a store. A nil logger disables logging.
func NewClient(store Store, cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = DefaultConfig().StoreTimeout
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = DefaultConfig().RefreshInterval
	}
	return &Client{
		store:  store,
		cache:  gocache.New(gocache.NoExpiration, 10*time.Minute),
		cfg:    cfg,
		logger: logger,
		subs:   make(map[string]context.CancelFunc),
	}
}

func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, c.cfg.StoreTimeout)
}

// fetch serves a read from cache while the entry is fresh, otherwise calls
// the store and caches the result for ttl. Read failures propagate untouched
// and leave the cache as it was.
func fetch[T any](c *Client, ctx context.Context, key Key, ttl time.Duration, fn func(context.Context) (T, error)) (T, error) {
	if v, found := c.cache.Get(key.String()); found {
		if cached, ok := v.(T); ok {
			return cached, nil
		}
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	fresh, err := fn(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.cache.Set(key.String(), fresh, ttl)
	return fresh, nil
}

// All returns every session, newest start date first.
func (c *Client) All(ctx context.Context) ([]models.Session, error) {
	return fetch(c, ctx, AllKey(), c.cfg.Staleness.List, c.store.GetAll)
}

// ByID returns one session or nil when absent.
func (c *Client) ByID(ctx context.Context, id uint) (*models.Session, error) {
	return fetch(c, ctx, DetailKey(id), c.cfg.Staleness.Detail, func(ctx context.Context) (*models.Session, error) {
		return c.store.GetByID(ctx, id)
	})
}

// Today returns the sessions overlapping today.
func (c *Client) Today(ctx context.Context) ([]models.Session, error) {
	return fetch(c, ctx, TodayKey(), c.cfg.Staleness.Today, c.store.TodaySessions)
}

// Week returns the 7 day buckets of the week containing ref.
func (c *Client) Week(ctx context.Context, search string, ref time.Time) ([]db.DayBucket, error) {
	return fetch(c, ctx, WeekKey(search, ref), c.cfg.Staleness.Week, func(ctx context.Context) ([]db.DayBucket, error) {
		return c.store.WeekSessions(ctx, db.WeekQuery{Search: search, ReferenceDate: ref})
	})
}

// Past returns day buckets from the earliest session through today.
func (c *Client) Past(ctx context.Context, search string) ([]db.DayBucket, error) {
	return fetch(c, ctx, PastKey(search), c.cfg.Staleness.Past, func(ctx context.Context) ([]db.DayBucket, error) {
		return c.store.PastSessions(ctx, search)
	})
}

// ByDate returns the sessions overlapping one calendar day.
func (c *Client) ByDate(ctx context.Context, date time.Time) ([]models.Session, error) {
	return fetch(c, ctx, ByDateKey(date), c.cfg.Staleness.ByDate, func(ctx context.Context) ([]models.Session, error) {
		return c.store.SessionsByDate(ctx, date)
	})
}

// Range returns the sessions overlapping [start, end].
func (c *Client) Range(ctx context.Context, start, end time.Time) ([]models.Session, error) {
	return fetch(c, ctx, RangeKey(start, end), c.cfg.Staleness.Range, func(ctx context.Context) ([]models.Session, error) {
		return c.store.SessionsInRange(ctx, start, end)
	})
}

// Count returns the total session count.
func (c *Client) Count(ctx context.Context) (int64, error) {
	return fetch(c, ctx, CountKey(), c.cfg.Staleness.Count, c.store.Count)
}

// Health reports whether the store answers a trivial read.
func (c *Client) Health(ctx context.Context) bool {
	ctx, cancel := c.callContext(ctx)
	defer cancel()
	return c.store.HealthCheck(ctx)
}

// Create inserts a session. Every session cache entry is invalidated, then
// the new row is seeded under its detail key.
func (c *Client) Create(ctx context.Context, req db.CreateSessionRequest) (*models.Session, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	created, err := c.store.Insert(ctx, req)
	if err != nil {
		return nil, err
	}

	c.InvalidateAll()
	c.cache.Set(DetailKey(created.ID).String(), created, c.cfg.Staleness.Detail)
	return created, nil
}

// Update applies a partial update. On success the detail entry is replaced
// and the list, today and count entries are invalidated.
func (c *Client) Update(ctx context.Context, id uint, req db.UpdateSessionRequest) (*models.Session, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	updated, err := c.store.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	if updated != nil {
		c.cache.Set(DetailKey(id).String(), updated, c.cfg.Staleness.Detail)
	}
	c.Invalidate(KindAll)
	c.Invalidate(KindToday)
	c.Invalidate(KindCount)
	return updated, nil
}

// UpdateOptimistic applies the patch to the cached detail entry immediately,
// then performs the write. A failed write rolls the entry back to its
// snapshot for any reader observing the in-flight window; either way the
// entry is dropped once the write settles, so the next read is fresh.
func (c *Client) UpdateOptimistic(ctx context.Context, id uint, req db.UpdateSessionRequest) (*models.Session, error) {
	key := DetailKey(id).String()

	snapshot, hadSnapshot := c.cache.Get(key)
	if prev, ok := snapshot.(*models.Session); ok && prev != nil {
		optimistic := req.ApplyTo(*prev)
		c.cache.Set(key, &optimistic, c.cfg.Staleness.Detail)
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	updated, err := c.store.Update(ctx, id, req)
	if err != nil && hadSnapshot {
		c.cache.Set(key, snapshot, c.cfg.Staleness.Detail)
	}

	// Settled: invalidate the detail entry regardless of the outcome.
	c.cache.Delete(key)
	if err != nil {
		return nil, err
	}

	c.Invalidate(KindAll)
	c.Invalidate(KindToday)
	c.Invalidate(KindCount)
	return updated, nil
}

// Delete removes a session. The detail entry is dropped and the list, today
// and count entries are invalidated.
func (c *Client) Delete(ctx context.Context, id uint) error {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	if err := c.store.Delete(ctx, id); err != nil {
		return err
	}

	c.cache.Delete(DetailKey(id).String())
	c.Invalidate(KindAll)
	c.Invalidate(KindToday)
	c.Invalidate(KindCount)
	return nil
}

// Invalidate drops every cached entry of one kind.
func (c *Client) Invalidate(kind Kind) {
	p := prefix(kind)
	for key := range c.cache.Items() {
		if strings.HasPrefix(key, p) {
			c.cache.Delete(key)
		}
	}
}

// InvalidateAll drops every session cache entry.
func (c *Client) InvalidateAll() {
	c.cache.Flush()
}

// Subscribe runs refetch on the given cadence until Unsubscribe is called
// with the returned token. A cadence of zero uses the configured default.
func (c *Client) Subscribe(interval time.Duration, refetch func(context.Context) error) string {
	if interval <= 0 {
		interval = c.cfg.RefreshInterval
	}

	token := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())

	c.mu.Lock()
	c.subs[token] = cancel
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				callCtx, callCancel := c.callContext(ctx)
				if err := refetch(callCtx); err != nil {
					c.logger.Warn("auto-refresh failed", zap.Error(err))
				}
				callCancel()
			}
		}
	}()

	return token
}

// SubscribeToday keeps the today bucket fresh on the default cadence.
func (c *Client) SubscribeToday() string {
	return c.Subscribe(0, func(ctx context.Context) error {
		c.Invalidate(KindToday)
		_, err := c.Today(ctx)
		return err
	})
}

// SubscribeWeek keeps one week query fresh on the default cadence.
func (c *Client) SubscribeWeek(search string, ref time.Time) string {
	return c.Subscribe(0, func(ctx context.Context) error {
		c.Invalidate(KindWeek)
		_, err := c.Week(ctx, search, ref)
		return err
	})
}

// Unsubscribe stops the auto-refresh identified by token.
func (c *Client) Unsubscribe(token string) {
	c.mu.Lock()
	cancel, ok := c.subs[token]
	if ok {
		delete(c.subs, token)
	}
	c.mu.Unlock()
	if ok {
		cancel()
	}
}

// Close stops every subscription.
func (c *Client) Close() {
	c.mu.Lock()
	for token, cancel := range c.subs {
		delete(c.subs, token)
		cancel()
	}
	c.mu.Unlock()
}
