package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"

	"github.com/harrisonrobin/homeboard/pkg/agenda"
	"github.com/harrisonrobin/homeboard/pkg/auth"
	"github.com/harrisonrobin/homeboard/pkg/config"
	"github.com/harrisonrobin/homeboard/pkg/google"
	"github.com/harrisonrobin/homeboard/pkg/notion"
	"github.com/harrisonrobin/homeboard/pkg/server"
	"github.com/harrisonrobin/homeboard/pkg/weather"
)

func main() {
	envFile := flag.String("env", ".env", "path to an optional .env file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal("loading configuration", "err", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	logger := newLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// One authenticated client per provider, shared read-only across requests.
	tasksClient := notion.NewClient(cfg.NotionToken, cfg.TasksDatabaseID, cfg.RoutinesDatabaseID, cfg.CompletedLimit)
	calendarClient, err := google.NewClient(ctx, cfg.GoogleClientEmail, cfg.GooglePrivateKey, cfg.GoogleCalendarID)
	if err != nil {
		logger.Fatal("creating calendar client", "err", err)
	}

	weatherKey := cfg.WeatherAPIKey
	if !cfg.WeatherConfigured() {
		weatherKey = ""
	}
	weatherClient := weather.NewClient(weatherKey, cfg.WeatherLat, cfg.WeatherLon)

	agg := agenda.NewService(tasksClient, calendarClient, logger)
	sessions := auth.NewSessions(cfg.SessionSecret, cfg.PasswordHash, cfg.Production())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(logger, sessions, agg, tasksClient, weatherClient, cfg.UpcomingDays, cfg.RefreshIntervalS).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("dashboard listening", "addr", cfg.Addr, "env", cfg.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", "err", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func newLogger(level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
	})
}
