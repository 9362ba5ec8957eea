package pattern

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// DefaultMatchTimeout bounds a single match.
const DefaultMatchTimeout = 100 * time.Millisecond

// CompileHook is called once per distinct pattern after compilation. err is
// nil on success.
type CompileHook func(raw string, err error)

// Cache memoizes compiled patterns keyed by their raw text.
type Cache struct {
	mu       sync.RWMutex
	patterns map[string]*Pattern

	timeout   time.Duration
	logger    *slog.Logger
	onCompile CompileHook
}

// Option configures a Cache.
type Option func(*Cache)

// WithMatchTimeout sets the per-match timeout. Non-positive values keep the
// default.
func WithMatchTimeout(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used for compile failures and timeouts.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCompileHook registers fn to observe compilations.
func WithCompileHook(fn CompileHook) Option {
	return func(c *Cache) {
		c.onCompile = fn
	}
}

// NewCache creates an empty cache.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		patterns: make(map[string]*Pattern),
		timeout:  DefaultMatchTimeout,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the compiled pattern for raw, compiling it on first use. The
// second result is false when raw does not compile; the failure is cached.
func (c *Cache) Get(raw string) (*Pattern, bool) {
	return c.get(context.Background(), raw)
}

func (c *Cache) get(ctx context.Context, raw string) (*Pattern, bool) {
	c.mu.RLock()
	p, ok := c.patterns[raw]
	c.mu.RUnlock()
	if ok {
		return p, p != nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring the write lock
	if p, ok := c.patterns[raw]; ok {
		return p, p != nil
	}

	p, err := Compile(raw, c.timeout)
	if err != nil {
		c.logger.DebugContext(ctx, "pattern compile failed",
			slog.String("pattern", raw),
			slog.String("error", err.Error()))
	}
	c.patterns[raw] = p
	if c.onCompile != nil {
		c.onCompile(raw, err)
	}
	return p, p != nil
}

// Match reports whether subject contains a match for raw. Invalid patterns
// and timeouts count as no match.
func (c *Cache) Match(raw, subject string) bool {
	return c.MatchContext(context.Background(), raw, subject)
}

// MatchContext is Match with a context for compile and timeout logs.
func (c *Cache) MatchContext(ctx context.Context, raw, subject string) bool {
	p, ok := c.get(ctx, raw)
	if !ok {
		return false
	}
	matched, err := p.Match(subject)
	if err != nil {
		if errors.Is(err, ErrMatchTimeout) {
			c.logger.WarnContext(ctx, "pattern match timed out",
				slog.String("pattern", raw),
				slog.Duration("timeout", c.timeout))
		}
		return false
	}
	return matched
}

// Len returns the number of cached entries, including failed compilations.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.patterns)
}
