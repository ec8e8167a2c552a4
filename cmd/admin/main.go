package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/manga-catalog/admin-gateway/internal/api/http"
	"github.com/manga-catalog/admin-gateway/internal/api/http/handlers"
	"github.com/manga-catalog/admin-gateway/internal/config"
	"github.com/manga-catalog/admin-gateway/internal/events"
	"github.com/manga-catalog/admin-gateway/internal/gateway"
	"github.com/manga-catalog/admin-gateway/internal/observability"
	"github.com/manga-catalog/admin-gateway/internal/persistence"
	"github.com/manga-catalog/admin-gateway/internal/repository"
	"github.com/manga-catalog/admin-gateway/internal/service"
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

	metrics := observability.NewMetrics()

	api, err := gateway.NewClient(cfg.Backend, logger, metrics)
	if err != nil {
		logger.Fatal("failed to build backend client", zap.Error(err))
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	dispatcher := events.NewInMemoryDispatcher(logger)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	notificationService.RegisterHandlers()

	statsService := service.NewStatisticsService(api, redis, cfg.Auth.StatsCacheTTL(), logger)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	app.Use(httptransport.SessionMiddleware(cfg, api, dispatcher, logger))

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis),
		Auth:       handlers.NewAuthHandler(),
		Navigation: handlers.NewNavigationHandler(),
		Dashboard:  handlers.NewDashboardHandler(statsService),
		Mangas:     handlers.NewResourceHandler(repository.NewMangaRepository(api).Resource),
		Chapters:   handlers.NewChaptersHandler(repository.NewChapterRepository(api)),
		Artists:    handlers.NewResourceHandler(repository.NewArtistRepository(api).Resource),
		Groups:     handlers.NewResourceHandler(repository.NewGroupRepository(api).Resource),
		Doujinshis: handlers.NewResourceHandler(repository.NewDoujinshiRepository(api).Resource),
		Genres:     handlers.NewResourceHandler(repository.NewGenreRepository(api).Resource),
		Users:      handlers.NewResourceHandler(repository.NewUserRepository(api).Resource),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
