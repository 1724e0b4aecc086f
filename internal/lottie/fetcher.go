// Package lottie fetches the optional decorative animations shown on each
// portfolio page. Every failure degrades to "no animation".
package lottie

import (
	"context"
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultTimeout  = 5 * time.Second
	DefaultCacheTTL = 30 * time.Minute
	failureTTL      = time.Minute
	maxBodyBytes    = 4 << 20
)

// Animation is a decoded Lottie document.
type Animation map[string]any

// JSON encodes the animation for embedding in a script element. The encoder
// escapes <, > and & so the payload cannot close the element.
func (a Animation) JSON() template.JS {
	b, err := json.Marshal(a)
	if err != nil {
		return template.JS("null")
	}
	return template.JS(b)
}

type cacheEntry struct {
	anim    Animation
	ok      bool
	expires time.Time
}

// Fetcher performs bounded GET requests for animation payloads.
type Fetcher struct {
	client   *http.Client
	timeout  time.Duration
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time

	group singleflight.Group
	mu    sync.RWMutex
	cache map[string]cacheEntry
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout bounds each request. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithCacheTTL sets how long a successful fetch is reused. Zero disables caching.
func WithCacheTTL(d time.Duration) Option {
	return func(f *Fetcher) {
		if d >= 0 {
			f.cacheTTL = d
		}
	}
}

// WithHTTPClient replaces the underlying client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(f *Fetcher) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates a Fetcher.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:   &http.Client{},
		timeout:  DefaultTimeout,
		cacheTTL: DefaultCacheTTL,
		logger:   zap.NewNop(),
		now:      time.Now,
		cache:    make(map[string]cacheEntry),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the animation at url, or (nil, false) on any failure.
func (f *Fetcher) Fetch(ctx context.Context, url string) (Animation, bool) {
	if url == "" {
		return nil, false
	}
	if e, hit := f.cached(url); hit {
		return e.anim, e.ok
	}

	// The shared request outlives any single caller so that one visitor
	// leaving early does not record a failure for everyone else.
	shared := context.WithoutCancel(ctx)
	ch := f.group.DoChan(url, func() (any, error) {
		anim, ok := f.get(shared, url)
		f.store(url, anim, ok)
		return cacheEntry{anim: anim, ok: ok}, nil
	})
	select {
	case res := <-ch:
		e := res.Val.(cacheEntry)
		return e.anim, e.ok
	case <-ctx.Done():
		return nil, false
	}
}

func (f *Fetcher) get(ctx context.Context, url string) (anim Animation, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Warn("animation fetch panicked", zap.String("url", url), zap.Any("panic", r))
			anim, ok = nil, false
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		f.logger.Debug("animation request invalid", zap.String("url", url), zap.Error(err))
		return nil, false
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Debug("animation fetch failed", zap.String("url", url), zap.Error(err))
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		f.logger.Debug("animation fetch non-200", zap.String("url", url), zap.Int("status", resp.StatusCode))
		return nil, false
	}

	var decoded Animation
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&decoded); err != nil {
		f.logger.Debug("animation decode failed", zap.String("url", url), zap.Error(err))
		return nil, false
	}
	if decoded == nil {
		return nil, false
	}
	return decoded, true
}

func (f *Fetcher) cached(url string) (cacheEntry, bool) {
	f.mu.RLock()
	e, ok := f.cache[url]
	f.mu.RUnlock()
	if !ok || f.now().After(e.expires) {
		return cacheEntry{}, false
	}
	return e, true
}

func (f *Fetcher) store(url string, anim Animation, ok bool) {
	ttl := f.cacheTTL
	if !ok && ttl > failureTTL {
		ttl = failureTTL
	}
	if ttl <= 0 {
		return
	}
	f.mu.Lock()
	f.cache[url] = cacheEntry{anim: anim, ok: ok, expires: f.now().Add(ttl)}
	f.mu.Unlock()
}
