package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"schooldekho/impl/core"
	"schooldekho/internal/config"
	"schooldekho/internal/database"
	"schooldekho/internal/http-server/api"
	"schooldekho/internal/lib/logger"
	"schooldekho/internal/lib/sl"
	"syscall"
	"time"
)

const shutdownTimeout = 15 * time.Second

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	lg.Info("starting schooldekho", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := core.New(lg)

	db, err := repository.NewMongoClient(ctx, conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("mongo client")
	}
	if db != nil {
		if err = db.EnsureIndexes(ctx); err != nil {
			lg.With(
				sl.Err(err),
			).Warn("mongo indexes")
		}
		handler.SetRepository(db)
		lg.With(
			sl.Secret("url", conf.Mongo.URL),
			slog.String("database", conf.DatabaseName()),
		).Info("mongo client initialized")
	}

	server := api.New(conf, lg, handler)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
		lg.Info("shutdown signal received")
	case err = <-errCh:
		if err != nil {
			lg.Error("server start", sl.Err(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		lg.Error("server shutdown", sl.Err(err))
	}
	if db != nil {
		if err = db.Close(shutdownCtx); err != nil {
			lg.Error("mongo close", sl.Err(err))
		}
	}
	lg.Info("service stopped")
}
