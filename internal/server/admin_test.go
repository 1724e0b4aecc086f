package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oluyale/portfolio/internal/analytics"
	"github.com/oluyale/portfolio/internal/pages"
)

func TestAdminRequiresLogin(t *testing.T) {
	env := newTestEnv(t, nil)
	for _, path := range []string{"/admin/dashboard", "/admin/api/stats", "/admin/export/stats"} {
		rec := env.get(t, path, false)
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/admin/login", rec.Header().Get("Location"), path)
	}
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t, nil)
	rec := env.postForm(t, "/admin/login", url.Values{"username": {"owner"}, "password": {"nope"}}, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestAdminLoginDisabledWithoutCredentialsOutsideDebug(t *testing.T) {
	env := newTestEnv(t, func(d *Deps) {
		d.Config.AdminUsername = ""
		d.Config.AdminPassword = ""
	})
	require.NotEqual(t, gin.DebugMode, gin.Mode())
	rec := env.postForm(t, "/admin/login", url.Values{"username": {devAdminUsername}, "password": {devAdminPassword}}, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminDashboardAndStats(t *testing.T) {
	env := newTestEnv(t, nil)

	env.get(t, "/?page=Projects", false)
	env.get(t, "/?page=Projects", false)
	env.get(t, "/?page=Contact", false)

	rec := env.postForm(t, "/admin/login", url.Values{"username": {"owner"}, "password": {"s3cret"}}, false)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	// flush queued page views
	env.tracker.Close()

	rec = env.get(t, "/admin/api/stats", false)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats analytics.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(3), stats.TotalViews)
	assert.Equal(t, int64(1), stats.UniqueVisitors)
	views := map[pages.ID]int64{}
	for _, pc := range stats.ByPage {
		views[pc.Page] = pc.Views
	}
	assert.Equal(t, int64(2), views[pages.Projects])
	assert.Equal(t, int64(1), views[pages.Contact])

	rec = env.get(t, "/admin/dashboard", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Views by page")

	rec = env.get(t, "/admin/export/stats", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	rec = env.postForm(t, "/admin/privacy/cleanup", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"removed":0}`, rec.Body.String())

	rec = env.get(t, "/admin/logout", false)
	assert.Equal(t, http.StatusFound, rec.Code)
	rec = env.get(t, "/admin/dashboard", false)
	assert.Equal(t, http.StatusFound, rec.Code)
}
