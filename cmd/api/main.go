package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/vex-labs/vex-backend/internal/api/http"
	"github.com/vex-labs/vex-backend/internal/api/http/handlers"
	"github.com/vex-labs/vex-backend/internal/config"
	"github.com/vex-labs/vex-backend/internal/events"
	"github.com/vex-labs/vex-backend/internal/observability"
	"github.com/vex-labs/vex-backend/internal/persistence"
	"github.com/vex-labs/vex-backend/internal/service"
	"github.com/vex-labs/vex-backend/internal/store"
	"github.com/vex-labs/vex-backend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	st := store.New(nil)
	snapshots := persistence.NewSnapshotStore(pg.PoolHandle(), logger)
	if snap, err := snapshots.Load(ctx); err != nil {
		logger.Fatal("failed to load snapshot", zap.Error(err))
	} else if snap != nil {
		st.Restore(*snap)
	}

	dispatcher := events.NewInMemoryDispatcher()

	userService := service.NewUserService(st, logger)
	ticketService := service.NewTicketService(service.TicketDependencies{
		Store:      st,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	statsService := service.NewStatsService(st)
	notificationService := service.NewNotificationService(dispatcher, redis, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	snapshotWorker := worker.NewSnapshotWorker(st, snapshots, logger, cfg.Snapshot.Interval())
	snapshotWorker.Start()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:   handlers.NewUsersHandler(userService),
		Tickets: handlers.NewTicketsHandler(ticketService),
		Stats:   handlers.NewStatsHandler(statsService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
	snapshotWorker.Stop()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
