package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"

	"petjobs-engine/internal/app"
	"petjobs-engine/internal/config"
	"petjobs-engine/internal/events"
	"petjobs-engine/internal/httpapi"
	"petjobs-engine/internal/logging"
	"petjobs-engine/internal/scheduler"
	"petjobs-engine/internal/view"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Engine data dir: use env if provided, else local folder.
	dataDir := os.Getenv("PETJOBS_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock data dir: %w", err)
	}
	if !locked {
		return fmt.Errorf("another engine is already running in %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	userCfgPath, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		return fmt.Errorf("config bootstrap failed: %w", err)
	}
	loaded, err := config.Load(userCfgPath)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", userCfgPath, err)
	}
	config.ApplyEnv(&loaded)
	loaded.App.DataDir = dataDir

	cfg, vr := config.NormalizeAndValidate(loaded)
	if err := vr.Err(); err != nil {
		return err
	}

	logger := logging.New(cfg.App.LogLevel)
	defer func() { _ = logger.Sync() }()
	for _, w := range vr.Warnings {
		logger.Warn("config warning", "msg", w)
	}

	var cfgVal atomic.Value // stores config.Config
	cfgVal.Store(cfg)

	session := app.NewSession(cfg.Catalog, logger)
	if err := session.Seed(cfg.SeedDrafts()); err != nil {
		logger.Warn("some seed requests were skipped", "err", err)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}

	hub := events.NewHub()
	mux := httpapi.NewMux(httpapi.Deps{
		Session:     session,
		Hub:         hub,
		Renderer:    renderer,
		Log:         logger,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
	})

	addr := net.JoinHostPort(cfg.App.Host, strconv.Itoa(cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler:           httpapi.Handler(mux, logger, httpapi.NewClientLimiter(cfg.Limits.RequestsPerSecond, cfg.Limits.Burst)),
		ReadHeaderTimeout: 5 * time.Second,
		// request contexts end with the group so open SSE streams let Shutdown finish
		BaseContext: func(net.Listener) context.Context { return gctx },
	}

	token := os.Getenv("PETJOBS_SHUTDOWN_TOKEN")
	if token == "" {
		if token, err = randomToken(16); err != nil {
			return err
		}
		tokenPath := filepath.Join(dataDir, "engine.token")
		if err := os.WriteFile(tokenPath, []byte(token), 0o600); err != nil {
			return err
		}
		defer os.Remove(tokenPath)
	}
	mux.HandleFunc("/shutdown", shutdownHandler(token, srv))

	g.Go(func() error {
		logger.Info("engine listening", "url", "http://"+ln.Addr().String(), "config", userCfgPath)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		// /shutdown stops the server without a signal
		stop()
		return nil
	})
	if hb := cfg.Events.HeartbeatSeconds; hb > 0 {
		g.Go(func() error {
			scheduler.Every(gctx, time.Duration(hb)*time.Second, "heartbeat", logger, func(context.Context) error {
				hub.Publish(events.MakeEvent("", events.TypeHeartbeat, map[string]any{"subscribers": hub.Subscribers()}))
				return nil
			})
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	logger.Info("engine stopped", "err", err)
	return err
}
