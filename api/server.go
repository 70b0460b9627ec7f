// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"time"

	"textkit/api/middleware"
	"textkit/core/interfaces"
	"textkit/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	apiTitle       = "Textkit API"
	apiVersion     = "1.0.0"
	apiDescription = "HTML stripping, shortening and excerpting, plain-text helpers and YouTube link utilities"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window

	// Limiter, when set, replaces the limiter built from RateLimit and RateWindow
	Limiter *middleware.RateLimiter

	// Flags is placed in every request context, nil selects the built-in defaults
	Flags featureflags.Manager
}

func newRouter() chi.Router {
	router := chi.NewRouter()

	// CORS must run first so preflight requests are never rate limited
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	return router
}

func newConfig() huma.Config {
	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = apiDescription
	return config
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	router := newRouter()

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, newConfig())
	return api, router
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := newRouter()

	flags := cfg.Flags
	if flags == nil {
		flags = featureflags.NewStaticManager(featureflags.Defaults())
	}
	router.Use(middleware.FeatureFlagMiddleware(flags))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	limiter := cfg.Limiter
	if limiter == nil && cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	}
	if limiter != nil {
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	api := humachi.New(router, newConfig())
	return api, router
}
