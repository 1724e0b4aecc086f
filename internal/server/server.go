package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/oluyale/portfolio/internal/analytics"
	"github.com/oluyale/portfolio/internal/assets"
	"github.com/oluyale/portfolio/internal/config"
	"github.com/oluyale/portfolio/internal/content"
	"github.com/oluyale/portfolio/internal/logging"
	"github.com/oluyale/portfolio/internal/lottie"
	"github.com/oluyale/portfolio/internal/navstate"
	"github.com/oluyale/portfolio/web"
)

const shutdownTimeout = 10 * time.Second

// AnimationSource provides the optional page animations.
type AnimationSource interface {
	Fetch(ctx context.Context, url string) (lottie.Animation, bool)
}

// Deps are the collaborators the server is built from.
type Deps struct {
	Config     *config.Config
	Logger     *zap.Logger
	Portfolio  *content.Portfolio
	Registry   *content.Registry
	Sessions   navstate.Store
	Animations AnimationSource
	Assets     *assets.Library
	Tracker    *analytics.Tracker
}

// Server serves the portfolio.
type Server struct {
	cfg        *config.Config
	logger     *zap.Logger
	portfolio  *content.Portfolio
	registry   *content.Registry
	sessions   navstate.Store
	animations AnimationSource
	assets     *assets.Library
	tracker    *analytics.Tracker

	tmpl       *template.Template
	engine     *gin.Engine
	adminToken string
}

// New wires the gin engine and routes.
func New(d Deps) (*Server, error) {
	if d.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if d.Sessions == nil {
		return nil, errors.New("server: session store is required")
	}
	s := &Server{
		cfg:        d.Config,
		logger:     d.Logger,
		portfolio:  d.Portfolio,
		registry:   d.Registry,
		sessions:   d.Sessions,
		animations: d.Animations,
		assets:     d.Assets,
		tracker:    d.Tracker,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.portfolio == nil {
		s.portfolio = content.Default()
	}
	if s.registry == nil {
		s.registry = content.NewRegistry()
	}
	if s.assets == nil {
		s.assets = assets.New(nil, "assets", s.portfolio.Owner.ProfileImage, s.portfolio.Owner.Resume)
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	s.tmpl = tmpl

	token, err := analytics.RandomToken()
	if err != nil {
		return nil, fmt.Errorf("server: admin token: %w", err)
	}
	s.adminToken = token

	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) routes() error {
	r := gin.New()
	r.Use(logging.Requests(s.logger), logging.Recovery(s.logger))
	r.SetHTMLTemplate(s.tmpl)

	static, err := fs.Sub(web.ContentFS, "static")
	if err != nil {
		return fmt.Errorf("server: static files: %w", err)
	}
	r.StaticFS("/static", http.FS(static))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/profile.png", s.handleProfileImage)

	site := r.Group("/")
	site.Use(s.sessionMiddleware())
	if s.tracker != nil {
		site.Use(analytics.Middleware(s.tracker))
	}
	site.GET("/", s.handlePage)
	site.POST("/nav/menu", s.handleToggleMenu)
	site.POST("/nav/:page", s.handleNavigate)
	site.POST("/contact", s.handleContact)
	site.GET("/resume", s.handleResume)

	s.setupAdminRoutes(r)
	s.engine = r
	return nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
