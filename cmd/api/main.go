package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"product-inventory/internal/config"
	"product-inventory/internal/database"
	"product-inventory/internal/handlers"
	"product-inventory/internal/logger"
	"product-inventory/internal/middleware"
	"product-inventory/internal/repository"
	"product-inventory/internal/routes"
	"product-inventory/internal/service"
	"product-inventory/web"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()
	zap.ReplaceGlobals(zlog)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		zlog.Fatal("connection failed", zap.Error(err))
	}
	defer database.Disconnect(context.Background(), client)

	db := client.Database(cfg.MongoDB)
	if err := repository.EnsureSchema(ctx, db, cfg.MongoCollection); err != nil {
		// sin privilegios de dbAdmin el servicio sigue con las validaciones en Go
		zlog.Warn("could not install collection schema", zap.Error(err))
	}

	repo := repository.NewProductRepository(db.Collection(cfg.MongoCollection), cfg.StoreTimeout)
	h := handlers.NewProductHandler(service.NewProductService(repo, zlog))

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(zlog), gin.Recovery())
	routes.RegisterRoutes(router, h)
	routes.RegisterUI(router, web.Static())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zlog.Info("Server running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
}
