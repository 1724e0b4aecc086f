package analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/oluyale/portfolio/internal/pages"
	"github.com/oluyale/portfolio/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTracker(t *testing.T) *Tracker {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "analytics.db"), nil)
	require.NoError(t, err)
	tr, err := NewTracker(db, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		tr.Close()
		db.Close()
	})
	return tr
}

func TestHashIPIsStableAndOpaque(t *testing.T) {
	tr := newTracker(t)
	a := tr.HashIP("203.0.113.7")
	assert.Len(t, a, 16)
	assert.Equal(t, a, tr.HashIP("203.0.113.7"))
	assert.NotEqual(t, a, tr.HashIP("203.0.113.8"))
	assert.NotContains(t, a, "203")
}

func TestRecordAndStats(t *testing.T) {
	tr := newTracker(t)
	now := time.Date(2025, 5, 10, 15, 0, 0, 0, time.UTC)

	tr.now = func() time.Time { return now.Add(-10 * 24 * time.Hour) }
	tr.Record("10.0.0.1", "old-agent", "/", pages.Home)
	tr.now = func() time.Time { return now.Add(-3 * 24 * time.Hour) }
	tr.Record("10.0.0.2", "ua", "/", pages.Skills)
	tr.now = func() time.Time { return now }
	tr.Record("10.0.0.1", "ua", "/", pages.Projects)
	tr.Record("10.0.0.1", "ua", "/", pages.Projects)
	tr.Close()

	stats, err := tr.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalViews)
	assert.Equal(t, int64(2), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.ViewsToday)
	assert.Equal(t, int64(3), stats.ViewsThisWeek)

	byPage := map[pages.ID]int64{}
	for _, pc := range stats.ByPage {
		byPage[pc.Page] = pc.Views
	}
	assert.Equal(t, map[pages.ID]int64{
		pages.Home: 1, pages.Skills: 1, pages.Projects: 2, pages.Experience: 0, pages.Contact: 0,
	}, byPage)

	require.Len(t, stats.Recent, 4)
	assert.Equal(t, pages.Projects, stats.Recent[0].Page)
	assert.Equal(t, "old-agent", stats.Recent[3].UserAgent)
}

func TestRecordAfterCloseIsDropped(t *testing.T) {
	tr := newTracker(t)
	tr.Close()
	tr.Close()
	tr.Record("10.0.0.1", "ua", "/", pages.Home)

	stats, err := tr.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalViews)
}

func TestCleanup(t *testing.T) {
	tr := newTracker(t)
	now := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)

	tr.now = func() time.Time { return now.Add(-Retention - time.Hour) }
	tr.Record("a", "", "/", pages.Home)
	tr.now = func() time.Time { return now }
	tr.Record("b", "", "/", pages.Home)
	tr.Close()

	n, err := tr.Cleanup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRecentReportsUnreadableRows(t *testing.T) {
	tr := newTracker(t)
	_, err := tr.db.ExecContext(context.Background(),
		`INSERT INTO page_views (hashed_ip, path, page, viewed_at) VALUES ('x', '/', 'home', 'not-a-time')`)
	require.NoError(t, err)

	_, err = tr.Recent(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan recent")
}

func TestCloseStopsWorker(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "leak.db"), nil)
	require.NoError(t, err)
	tr, err := NewTracker(db, nil)
	require.NoError(t, err)
	tr.Record("10.0.0.1", "ua", "/", pages.Home)
	tr.Close()
	require.NoError(t, db.Close())
}

func TestMiddleware(t *testing.T) {
	tr := newTracker(t)
	r := gin.New()
	r.Use(Middleware(tr))
	r.GET("/", func(c *gin.Context) {
		c.Set(PageKey, pages.Contact)
		c.String(http.StatusOK, "ok")
	})
	r.GET("/admin/dashboard", func(c *gin.Context) {
		c.Set(PageKey, pages.Home)
		c.String(http.StatusOK, "ok")
	})
	r.GET("/broken", func(c *gin.Context) {
		c.Set(PageKey, pages.Home)
		c.String(http.StatusInternalServerError, "no")
	})
	r.GET("/unmarked", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	do := func(path string, dnt bool) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if dnt {
			req.Header.Set("DNT", "1")
		}
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
	do("/", false)
	do("/", true)
	do("/admin/dashboard", false)
	do("/broken", false)
	do("/unmarked", false)
	tr.Close()

	stats, err := tr.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalViews)
	require.Len(t, stats.Recent, 1)
	assert.Equal(t, pages.Contact, stats.Recent[0].Page)
}
