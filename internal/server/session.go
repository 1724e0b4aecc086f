package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oluyale/portfolio/internal/navstate"
)

const (
	sessionCookie = "portfolio_session"
	sessionKey    = "portfolio.session"
)

// sessionMiddleware assigns every visitor a session id cookie.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	maxAge := int(s.cfg.SessionTTL.Seconds())
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, id, maxAge, "/", "", s.cfg.SecureCookies, true)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

// loadState never fails: storage errors are logged and a fresh state used.
func (s *Server) loadState(c *gin.Context) navstate.State {
	st, err := s.sessions.Load(c.Request.Context(), sessionID(c))
	if err != nil {
		s.logger.Warn("load navigation state", zap.Error(err))
		return navstate.New()
	}
	return st
}

func (s *Server) saveState(c *gin.Context, st navstate.State) {
	if err := s.sessions.Save(c.Request.Context(), sessionID(c), st); err != nil {
		s.logger.Warn("save navigation state", zap.Error(err))
	}
}
