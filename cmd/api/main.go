// ABOUTME: Main entry point for the Textkit API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"textkit/api"
	"textkit/api/handlers"
	"textkit/api/middleware"
	"textkit/core/excerpt"
	"textkit/core/interfaces"
	"textkit/core/markup"
	"textkit/infrastructure/cache/memory"
	"textkit/infrastructure/cache/redis"
	"textkit/infrastructure/cache/sqlite"
	"textkit/infrastructure/logger/structured"
	"textkit/pkg/config"
	"textkit/pkg/featureflags"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := structured.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	flags := featureflags.NewEnvManager("")
	logger.Info("Starting Textkit API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"flags":      flags.GetAllFlags(),
	})

	var cache interfaces.Cache
	if flags.IsEnabled(context.Background(), featureflags.CacheEnabled) {
		var closer io.Closer
		cache, closer = newCache(cfg, logger)
		if closer != nil {
			defer closer.Close()
		}
	} else {
		logger.Info("Markup cache disabled", nil)
	}

	deps := interfaces.Dependencies{
		Cache:  cache,
		Logger: logger,
	}

	markupService := markup.NewService(deps, nil, time.Duration(cfg.Cache.TTL)*time.Second)
	excerptService := excerpt.NewService(markupService, logger)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.Window)*time.Second)
	defer limiter.Close()

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:  logger,
		Limiter: limiter,
		Flags:   flags,
	})

	defaults := handlers.MarkupDefaults{
		Length:   cfg.Markup.ShortenLength,
		Ellipsis: cfg.Markup.Ellipsis,
	}
	handlers.NewHTMLHandler(markupService, defaults).RegisterRoutes(humaAPI)
	handlers.NewTextHandler().RegisterRoutes(humaAPI)
	handlers.NewYouTubeHandler().RegisterRoutes(humaAPI)
	handlers.NewExcerptHandler(excerptService, flags, defaults).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the configured backend, falling back to memory when redis or sqlite is unavailable
func newCache(cfg *config.Config, logger interfaces.Logger) (interfaces.Cache, io.Closer) {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err == nil {
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
			return redisCache, redisCache
		}
		logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite, logger)
		if err == nil {
			logger.Info("Using SQLite cache", map[string]interface{}{
				"path": cfg.Cache.SQLite.Path,
			})
			return sqliteCache, sqliteCache
		}
		logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache(cfg.Cache.Memory), nil
}
