package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lysyi3m/funding-radar/app/api"
	"github.com/lysyi3m/funding-radar/app/backup"
	"github.com/lysyi3m/funding-radar/app/cfg"
	"github.com/lysyi3m/funding-radar/app/database"
	"github.com/lysyi3m/funding-radar/app/feed"
	"github.com/lysyi3m/funding-radar/app/funding"
	"github.com/lysyi3m/funding-radar/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown
		return
	}

	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	slog.Info("Starting Funding Radar", "version", appCfg.Version, "command", appCfg.Command)

	for _, path := range []string{appCfg.DBPath, appCfg.BackupPath} {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			fatal("Failed to create data directory", "path", path, "error", err)
		}
	}

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		fatal("Failed to open database", "path", appCfg.DBPath, "error", err)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		db.Close()
		fatal("Failed to run database migrations", "error", err)
	}
	slog.Debug("Database ready", "path", appCfg.DBPath, "schema_version", version, "dirty", dirty)

	configCache := feed.NewConfigCache(appCfg.FeedsDir)
	if err := configCache.Run(); err != nil {
		db.Close()
		fatal("Failed to load feed configurations", "dir", appCfg.FeedsDir, "error", err)
	}
	if configCache.GetConfigCount() == 0 {
		count := configCache.LoadDefaults()
		slog.Info("No feed configurations found, using reference feeds", "dir", appCfg.FeedsDir, "count", count)
	}

	feeds := configCache.GetEnabledConfigs()
	sourceNames := make([]string, 0, len(feeds))
	for _, f := range feeds {
		sourceNames = append(sourceNames, f.Name)
	}
	slog.Info("Feed configurations loaded", "enabled", len(feeds), "total", configCache.GetConfigCount())

	normalizer := funding.NewNormalizer(funding.DefaultVocabulary().WithSourceNames(sourceNames...), appCfg.SinceDays, nil)
	fetcher := feed.NewFetcher(&http.Client{}, appCfg.UserAgent)
	parser := feed.NewParser()
	newsRepo := database.NewNewsRepository(db)
	csvLog := backup.NewCSVLog(appCfg.BackupPath)

	newIngestTask := func() tasks.TaskInterface {
		return tasks.NewIngestTask(feeds, fetcher, parser, normalizer, newsRepo, csvLog, appCfg.MaxItems)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch appCfg.Command {
	case cfg.CommandServe:
		err = serve(ctx, appCfg, api.NewHandler(configCache, newsRepo, appCfg.Version), newIngestTask)
	default:
		err = ingest(ctx, newIngestTask())
	}

	if err != nil {
		slog.Error("Funding Radar stopped with error", "error", err)
		stop()
		db.Close()
		os.Exit(1)
	}
}

func ingest(ctx context.Context, task tasks.TaskInterface) error {
	task.Start()
	if err := task.Execute(ctx); err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}
	return nil
}

func serve(ctx context.Context, appCfg *cfg.Cfg, handler *api.Handler, newIngestTask func() tasks.TaskInterface) error {
	if appCfg.Schedule != "" {
		scheduler, err := tasks.NewScheduler(appCfg.Schedule, newIngestTask)
		if err != nil {
			return err
		}
		scheduler.Start()
		defer func() {
			scheduler.Stop()
			slog.Info("Scheduler stopped")
		}()
	}

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      api.NewServer(handler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case serveErr = <-serverErrChan:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	return serveErr
}

func fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}
