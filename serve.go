package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oluyale/portfolio/internal/analytics"
	"github.com/oluyale/portfolio/internal/assets"
	"github.com/oluyale/portfolio/internal/content"
	"github.com/oluyale/portfolio/internal/lottie"
	"github.com/oluyale/portfolio/internal/navstate"
	"github.com/oluyale/portfolio/internal/server"
	"github.com/oluyale/portfolio/internal/storage"
)

var (
	servePort   string
	serveDBPath string
	serveMemory bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	RunE:  runServe,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, serveCmd} {
		cmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides PORT)")
		cmd.Flags().StringVar(&serveDBPath, "db", "", "sqlite database path (overrides DATABASE_PATH)")
		cmd.Flags().BoolVar(&serveMemory, "memory", false, "keep sessions and analytics in memory")
	}
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if servePort != "" {
		cfg.Port = servePort
	}
	if serveDBPath != "" {
		cfg.DatabasePath = serveDBPath
	}
	if serveMemory {
		cfg.DatabasePath = storage.MemoryPath
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	portfolio, err := content.Load(cfg.ContentPath)
	if err != nil {
		return err
	}

	db, err := storage.Open(ctx, cfg.DatabasePath, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	tracker, err := analytics.NewTracker(db, logger)
	if err != nil {
		return err
	}
	defer tracker.Close()
	if _, err := tracker.Cleanup(ctx); err != nil {
		logger.Warn("privacy cleanup failed", zap.Error(err))
	}

	sessions := newSessionStore(serveMemory, db)
	go navstate.RunPruner(ctx, sessions, cfg.SessionTTL, navstate.PruneInterval, logger)

	srv, err := server.New(server.Deps{
		Config:    cfg,
		Logger:    logger,
		Portfolio: portfolio,
		Registry:  content.NewRegistry(),
		Sessions:  sessions,
		Animations: lottie.New(
			lottie.WithTimeout(cfg.FetchTimeout),
			lottie.WithCacheTTL(cfg.AnimationCacheTTL),
			lottie.WithLogger(logger),
		),
		Assets:  assets.New(os.DirFS(cfg.AssetsDir), cfg.AssetsDir, portfolio.Owner.ProfileImage, portfolio.Owner.Resume),
		Tracker: tracker,
	})
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}
	return srv.Run(ctx, cfg.Addr())
}

// newSessionStore keeps sessions in process memory for --memory runs and in
// sqlite otherwise.
func newSessionStore(memory bool, db *storage.DB) navstate.Store {
	if memory {
		return navstate.NewMemoryStore()
	}
	return storage.NewSessionStore(db)
}

// background is used by commands that do not need signal handling.
func background(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
