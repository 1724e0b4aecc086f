package analytics

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oluyale/portfolio/internal/pages"
)

// PageKey is the gin context key handlers set to the page they rendered.
const PageKey = "portfolio.page"

var untrackedPrefixes = []string{"/static/", "/admin", "/favicon", "/healthz", "/profile.png"}

// Middleware records a view for every successful request whose handler set
// PageKey. Static and admin paths and DNT requests are skipped.
func Middleware(t *Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		v, ok := c.Get(PageKey)
		if !ok {
			return
		}
		page, ok := v.(pages.ID)
		if !ok {
			return
		}
		t.Record(c.ClientIP(), c.GetHeader("User-Agent"), path, page)
	}
}
