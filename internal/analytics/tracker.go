// Package analytics records privacy-conscious page views: client IPs are
// hashed with a per-process salt and Do Not Track is honored.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/oluyale/portfolio/internal/pages"
	"github.com/oluyale/portfolio/internal/storage"
)

// Retention is how long page views are kept.
const Retention = 365 * 24 * time.Hour

const queueSize = 256

// View is one recorded page view.
type View struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Page      pages.ID  `json:"page"`
	At        time.Time `json:"timestamp"`
}

// PageCount is the number of views for a page.
type PageCount struct {
	Page  pages.ID `json:"page"`
	Views int64    `json:"views"`
}

// Stats summarizes recorded views for the admin dashboard.
type Stats struct {
	TotalViews     int64       `json:"total_views"`
	UniqueVisitors int64       `json:"unique_visitors"`
	ViewsToday     int64       `json:"views_today"`
	ViewsThisWeek  int64       `json:"views_this_week"`
	ByPage         []PageCount `json:"by_page"`
	Recent         []View      `json:"recent_views"`
}

// Tracker writes page views on a background worker.
type Tracker struct {
	db     *storage.DB
	salt   string
	logger *zap.Logger
	now    func() time.Time

	mu     sync.Mutex
	closed bool
	queue  chan View
	done   chan struct{}
}

// NewTracker starts a tracker writing to db. Call Close to stop it.
func NewTracker(db *storage.DB, logger *zap.Logger) (*Tracker, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	salt, err := RandomToken()
	if err != nil {
		return nil, fmt.Errorf("analytics: salt: %w", err)
	}
	t := &Tracker{
		db:     db,
		salt:   salt,
		logger: logger,
		now:    time.Now,
		queue:  make(chan View, queueSize),
		done:   make(chan struct{}),
	}
	go t.run()
	return t, nil
}

// RandomToken returns 32 random bytes hex encoded.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// HashIP returns a stable, truncated hash of ip for this process.
func (t *Tracker) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Record queues a page view. Views are dropped when the queue is full or the
// tracker is closed.
func (t *Tracker) Record(ip, userAgent, path string, page pages.ID) {
	v := View{
		HashedIP:  t.HashIP(ip),
		UserAgent: userAgent,
		Path:      path,
		Page:      page,
		At:        t.now(),
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	select {
	case t.queue <- v:
	default:
		t.logger.Warn("page view dropped, queue full", zap.String("path", path))
	}
}

// Close flushes queued views and stops the worker.
func (t *Tracker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	close(t.queue)
	t.mu.Unlock()
	<-t.done
}

func (t *Tracker) run() {
	defer close(t.done)
	for v := range t.queue {
		if err := t.insert(context.Background(), v); err != nil {
			t.logger.Error("error recording page view", zap.Error(err))
		}
	}
}

func (t *Tracker) insert(ctx context.Context, v View) error {
	_, err := t.db.ExecContext(ctx, `
		INSERT INTO page_views (hashed_ip, user_agent, path, page, viewed_at)
		VALUES (?, ?, ?, ?, ?)
	`, v.HashedIP, v.UserAgent, v.Path, string(v.Page), v.At.Unix())
	return err
}

// Cleanup removes views older than Retention.
func (t *Tracker) Cleanup(ctx context.Context) (int64, error) {
	cutoff := t.now().Add(-Retention).Unix()
	res, err := t.db.ExecContext(ctx, `DELETE FROM page_views WHERE viewed_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("analytics: cleanup: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		t.logger.Info("privacy cleanup removed old page views", zap.Int64("rows", n))
	}
	return n, nil
}
