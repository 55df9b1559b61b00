package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"schooldekho/internal/config"
	"schooldekho/internal/database"
	"schooldekho/internal/lib/logger"
	"schooldekho/internal/lib/sl"
	"schooldekho/internal/seed"
	"syscall"
)

func main() {
	configPath := flag.String("conf", "config.yml", "path to config file")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, "")

	if err := run(conf, lg); err != nil {
		lg.Error("seed failed", sl.Err(err))
		os.Exit(1)
	}
	lg.Info("mock data population completed", slog.String("database", conf.DatabaseName()))
}

func run(conf *config.Config, lg *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repository.NewMongoClient(ctx, conf, lg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			lg.Error("mongo close", sl.Err(err))
		}
	}()

	if err = db.EnsureIndexes(ctx); err != nil {
		lg.Warn("mongo indexes", sl.Err(err))
	}
	return seed.Run(ctx, db, lg)
}
