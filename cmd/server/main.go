package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"heuristicheck/internal/adapters/browser"
	httpadapter "heuristicheck/internal/adapters/http"
	"heuristicheck/internal/adapters/memory"
	pg "heuristicheck/internal/adapters/postgres"
	"heuristicheck/internal/advisor"
	"heuristicheck/internal/audit"
	"heuristicheck/internal/config"
	"heuristicheck/internal/navigator"
	"heuristicheck/internal/ports"
	auditsvc "heuristicheck/internal/services/auditor"
	"heuristicheck/internal/services/inspector"
	profsvc "heuristicheck/internal/services/profiles"
	auditworker "heuristicheck/internal/workers/auditrunner"
)

type store interface {
	ports.DomainRepository
	ports.AuditRepository
	ports.ScoreRepository
	ports.JobRepository
}

func main() {
	cfg, err := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	if err != nil && !errors.Is(err, config.ErrNoDatabase) {
		logger.Error("config error", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire repositories to services (ports)
	var repo store
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, keeping audits in memory")
		repo = memory.New()
	} else {
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("db connect error", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			logger.Error("migration error", "error", err)
			os.Exit(1)
		}
		repo = db
	}

	var capturer ports.PageCapturer = browser.StaticFetcher{}
	if cfg.BrowserCapture {
		c := browser.NewCapturer(ctx, browser.Options{Logger: logger})
		defer c.Close()
		capturer = c
	}

	theme, err := navigator.ParseTheme(cfg.Theme)
	if err != nil {
		logger.Error("config error", "error", err)
		os.Exit(1)
	}

	engine := audit.NewEngine(audit.WithContrastThreshold(cfg.ContrastThreshold), audit.WithLogger(logger))
	inspectorOpts := []inspector.Option{
		inspector.WithCapturer(capturer),
		inspector.WithLogger(logger),
		inspector.WithDefaultSettings(cfg.Rules),
		inspector.WithDefaultTheme(theme),
	}
	adv, cache := newAdvisor(ctx, cfg, logger)
	if cache != nil {
		defer cache.Close()
	}
	if adv != nil {
		inspectorOpts = append(inspectorOpts, inspector.WithAdvisor(adv))
	}
	sessions := inspector.New(engine, inspectorOpts...)
	defer sessions.CloseAll()

	auditor := auditsvc.New(repo, repo, auditsvc.WithDefaultSettings(cfg.Rules))
	profiles := profsvc.New(repo)
	processor := auditworker.PageAuditor{Audits: repo, Jobs: repo, Capturer: capturer, Engine: engine}

	srv := httpadapter.New(auditor, profiles, repo, processor, sessions, logger)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	// Optional background job workers
	if cfg.AuditWorkers > 0 {
		auditworker.Run(ctx, repo, processor, cfg.AuditWorkers, 500*time.Millisecond, logger)
		logger.Info("audit workers started", "count", cfg.AuditWorkers)
	}

	httpSrv := &http.Server{Addr: cfg.ListenAddr, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	logger.Info("listening", "addr", cfg.ListenAddr, "env", cfg.Env)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown error", "error", err)
		}
	case err := <-errCh:
		logger.Error("server error", "error", fmt.Errorf("listen: %w", err))
		os.Exit(1)
	}
}

// newAdvisor returns a nil source when no provider key is configured; the navigator then
// reports the missing key. The returned cache, when not nil, is owned by the caller.
func newAdvisor(ctx context.Context, cfg config.Config, logger *slog.Logger) (navigator.AdviceSource, *advisor.RedisCache) {
	provider, err := advisor.NewProvider(cfg.Advisor)
	if err != nil {
		logger.Warn("advisor disabled", "provider", cfg.Advisor.Provider, "error", err)
		return nil, nil
	}
	opts := []advisor.Option{advisor.WithLogger(logger)}
	var cache *advisor.RedisCache
	if cfg.RedisURL != "" {
		cache, err = advisor.NewRedisCache(ctx, cfg.RedisURL, cfg.AdviceCacheTTL)
		if err != nil {
			logger.Warn("advice cache disabled", "error", err)
			cache = nil
		} else {
			opts = append(opts, advisor.WithCache(cache))
		}
	}
	logger.Info("advisor enabled", "provider", provider.Name(), "model", provider.Model())
	return advisor.New(provider, opts...), cache
}
