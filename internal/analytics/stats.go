package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/oluyale/portfolio/internal/pages"
)

const recentLimit = 50

// Stats computes dashboard totals.
func (t *Tracker) Stats(ctx context.Context) (*Stats, error) {
	now := t.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Unix()
	weekAgo := now.Add(-7 * 24 * time.Hour).Unix()

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalViews, `SELECT COUNT(*) FROM page_views`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM page_views`, nil},
		{&stats.ViewsToday, `SELECT COUNT(*) FROM page_views WHERE viewed_at >= ?`, []any{startOfDay}},
		{&stats.ViewsThisWeek, `SELECT COUNT(*) FROM page_views WHERE viewed_at >= ?`, []any{weekAgo}},
	}
	for _, c := range counts {
		if err := t.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("analytics: stats: %w", err)
		}
	}

	byPage, err := t.viewsByPage(ctx)
	if err != nil {
		return nil, err
	}
	stats.ByPage = byPage

	recent, err := t.Recent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	stats.Recent = recent
	return stats, nil
}

// viewsByPage returns a count for every known page, zero included.
func (t *Tracker) viewsByPage(ctx context.Context) ([]PageCount, error) {
	rows, err := t.db.QueryContext(ctx, `SELECT page, COUNT(*) FROM page_views GROUP BY page`)
	if err != nil {
		return nil, fmt.Errorf("analytics: views by page: %w", err)
	}
	defer rows.Close()

	found := map[pages.ID]int64{}
	for rows.Next() {
		var (
			page string
			n    int64
		)
		if err := rows.Scan(&page, &n); err != nil {
			return nil, fmt.Errorf("analytics: views by page: %w", err)
		}
		found[pages.ID(page)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics: views by page: %w", err)
	}

	out := make([]PageCount, 0, len(pages.All()))
	for _, id := range pages.All() {
		out = append(out, PageCount{Page: id, Views: found[id]})
	}
	return out, nil
}

// Recent returns the latest views, newest first.
func (t *Tracker) Recent(ctx context.Context, limit int) ([]View, error) {
	rows, err := t.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), COALESCE(page, ''), viewed_at
		FROM page_views
		ORDER BY viewed_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics: recent: %w", err)
	}
	defer rows.Close()

	var views []View
	for rows.Next() {
		var (
			v    View
			page string
			at   int64
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &page, &at); err != nil {
			return nil, fmt.Errorf("analytics: scan recent: %w", err)
		}
		v.Page = pages.ID(page)
		v.At = time.Unix(at, 0).UTC()
		views = append(views, v)
	}
	return views, rows.Err()
}
