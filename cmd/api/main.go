package main

import (
	"context"
	"log"
	"time"

	"opensea-orders/internal/core/cache"
	"opensea-orders/internal/core/config"
	"opensea-orders/internal/core/httpclient"
	"opensea-orders/internal/core/logger"
	"opensea-orders/internal/core/server"
	orderadapter "opensea-orders/internal/features/orders/adapters"
	orderhandler "opensea-orders/internal/features/orders/handler"
	orderservice "opensea-orders/internal/features/orders/service"

	"go.uber.org/zap"
)

// @title OpenSea Orders API
// @version 1.0
// @description This API looks up OpenSea marketplace orders by token or by chain and order hash.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.Bool("proxy", cfg.Proxy.Enabled),
		zap.Bool("cache", cfg.Cache.Enabled()),
	)

	// Initialize OpenSea Adapter
	openSea, err := orderadapter.NewOpenSeaAdapter(cfg.OpenSea, httpclient.WithProxy(cfg.Proxy.Settings()))
	if err != nil {
		l.Fatal("Failed to build OpenSea client", zap.Error(err))
	}

	// Initialize Order Service, optionally backed by Redis
	orderService := orderservice.NewOrderService(openSea)
	if cfg.Cache.Enabled() {
		redisCache, err := cache.NewRedisAdapter(cfg.Cache.RedisURL, "opensea:")
		if err != nil {
			l.Fatal("Invalid Redis configuration", zap.Error(err))
		}
		defer redisCache.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisCache.Ping(ctx)
		cancel()
		if err != nil {
			l.Fatal("Redis Health Check Failed", zap.Error(err))
		}
		l.Info("Redis connection verified")

		orderService.WithCache(redisCache, cfg.Cache.OrderTTL())
	}

	orderHandler := orderhandler.NewOrderHandler(orderService, cfg.RequestTimeout())

	srv := server.New(cfg)

	// Register Routes
	orderHandler.RegisterRoutes(srv.App)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
