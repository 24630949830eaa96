package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/admin-dashboard/internal/api/http"
	"github.com/spec-kit/admin-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/admin-dashboard/internal/auth"
	"github.com/spec-kit/admin-dashboard/internal/blobstore"
	"github.com/spec-kit/admin-dashboard/internal/config"
	"github.com/spec-kit/admin-dashboard/internal/observability"
	"github.com/spec-kit/admin-dashboard/internal/service"
	"github.com/spec-kit/admin-dashboard/internal/store"
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

	if cfg.Tracing.Enabled {
		tp, err := observability.InitTracer(cfg.Tracing, cfg.App.Name)
		if err != nil {
			logger.Fatal("failed to init tracer", zap.Error(err))
		}
		defer tp.Shutdown(ctx) //nolint:errcheck
	}

	blobs, err := blobstore.Open(ctx, cfg.Store, logger)
	if err != nil {
		logger.Fatal("failed to open blob store", zap.Error(err))
	}
	defer blobs.Close()

	collections := store.NewCollections(cfg.Store, blobs, logger)
	if err := collections.SeedDefaults(ctx); err != nil {
		logger.Fatal("failed to seed collections", zap.Error(err))
	}

	authService, err := service.NewAuthService(*cfg, blobs, logger)
	if err != nil {
		logger.Fatal("failed to init auth service", zap.Error(err))
	}
	if session, err := authService.Restore(ctx); err != nil {
		logger.Warn("failed to restore session", zap.Error(err))
	} else if session != nil {
		logger.Info("restored session", zap.String("username", session.Username))
	}

	userService := service.NewUserService(collections.Users)
	ticketService := service.NewTicketService(collections.Tickets)
	productService := service.NewProductService(collections.Products)
	orderService := service.NewOrderService(collections.Orders)
	statsService := service.NewStatsService(collections.Users, collections.Tickets, collections.Orders)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, blobs),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Products:       handlers.NewProductsHandler(productService),
		Orders:         handlers.NewOrdersHandler(orderService),
		Dashboard:      handlers.NewDashboardHandler(statsService),
		AuthMiddleware: authMiddleware,
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
