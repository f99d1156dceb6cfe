package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"rmadmin/config"
	"rmadmin/database/repository"
	"rmadmin/handlers"
	"rmadmin/routes"
	"rmadmin/services/dashboard"
	"rmadmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("main: failed to open datastore", zap.String("datastore", cfg.Datastore), zap.Error(err))
	}
	defer closeStore()

	loc, _ := cfg.Location()
	hub := handlers.NewStreamHub(logger)
	session, err := dashboard.NewSession(dashboard.SessionConfig{
		BookingsCollection: cfg.BookingsCollection,
		ProductsCollection: cfg.ProductsCollection,
		PageSize:           cfg.PageSize,
		StatsTTL:           cfg.StatsTTL,
		StatsCacheCapacity: cfg.StatsCacheCapacity,
		Location:           loc,
	}, dashboard.Deps{
		Source:          store,
		Mutator:         store,
		Renderer:        hub,
		ProductRenderer: hub,
		Logger:          logger,
	})
	if err != nil {
		logger.Fatal("main: failed to build dashboard session", zap.Error(err))
	}

	// The last snapshot stays readable after a subscription failure.
	go func() {
		if err := session.Start(ctx); err != nil && ctx.Err() == nil {
			logger.Error("main: live sync stopped, serving last snapshot", zap.Error(err))
		}
	}()

	router := gin.New()
	hb := handlers.NewHandlerBundle(session, hub, logger)
	routes.RegisterRoutes(router, hb, routes.Options{
		AllowedOrigins:    cfg.AllowedOrigins,
		MaxRequestsPerMin: cfg.MaxRequestsPerMin,
		Logger:            logger,
	})

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// stream requests end with the signal context
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	logger.Info("main: starting server", zap.String("addr", srv.Addr), zap.String("datastore", cfg.Datastore))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("main: server is shutting down...")

	session.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
