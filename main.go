package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cinema-seating/cmd"
	"cinema-seating/internal/data/repository"
	"cinema-seating/internal/queue"
	"cinema-seating/internal/wire"
	"cinema-seating/pkg/database"
	"cinema-seating/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The menu owns stdout in cli mode, so logs only go to the file there.
	var console io.Writer
	if config.App.Mode == "http" {
		console = os.Stdout
	}
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug, console)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("mode", config.App.Mode),
		zap.String("store", config.Store.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	if err := run(config, logger); err != nil {
		logger.Error("Application failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// run owns every connection so deferred cleanups execute on all exit paths.
func run(config *utils.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := openRepository(ctx, config, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeStore()

	publisher := queue.NewNopPublisher()
	if config.Broker.Enabled {
		amqpPublisher, err := queue.NewAMQPPublisher(config.Broker.URL, logger)
		if err != nil {
			return fmt.Errorf("connect to broker: %w", err)
		}
		publisher = amqpPublisher
		logger.Info("Broker connected")
	}
	defer publisher.Close()

	app, err := wire.Wiring(ctx, repo, config, publisher, logger)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	switch config.App.Mode {
	case "http":
		err = cmd.APIServer(ctx, app.Router, config.App.Port, logger)
	default:
		err = cmd.Terminal(ctx, app.Menu, os.Stdin, os.Stdout, logger)
	}
	if err != nil && ctx.Err() == nil {
		logger.Error("Application stopped with error", zap.Error(err))
	}

	if err := app.Service.Catalog.Persist(context.WithoutCancel(ctx), app.State); err != nil {
		return fmt.Errorf("save state at exit: %w", err)
	}
	return nil
}

// openRepository selects the store by STORE_DRIVER and returns a cleanup func.
func openRepository(ctx context.Context, config *utils.Config, logger *zap.Logger) (*repository.Repository, func(), error) {
	switch config.Store.Driver {
	case "postgres":
		db, err := database.InitDB(ctx, config.Database)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Database connected successfully")

		repo, err := repository.NewPostgresRepository(ctx, db, logger)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return repo, db.Close, nil

	case "redis":
		client, err := database.InitRedis(ctx, config.Redis)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Redis connected successfully", zap.String("addr", config.Redis.Addr))

		return repository.NewRedisRepository(client, config.Redis.Prefix, logger), func() { client.Close() }, nil

	default:
		return repository.NewFileRepository(config.Store.CatalogPath, config.Store.LedgerPath, logger), func() {}, nil
	}
}
