// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by patrickmn/go-cache
// - cache/redis: Redis cache using go-redis, keys prefixed with "textkit:"
// - cache/sqlite: SQLite cache with a background expiry sweep
// - logger/structured: logrus logger with optional lumberjack file rotation
//
// # Cache Implementations
//
// Every backend returns its package ErrNotFound on a miss and treats a zero TTL
// as no expiry.
//
//	cache := memory.NewMemoryCache(cfg.Cache.Memory)
//	err := cache.Set(ctx, "key", []byte("value"), time.Hour)
//	value, err := cache.Get(ctx, "key")
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
//
//	cache, err := sqlite.NewSQLiteCache(config.SQLiteConfig{Path: "textkit-cache.db"}, logger)
//	defer cache.Close()
//
// # Logging
//
//	logger, err := structured.NewLogger(config.LogConfig{Level: "info", Format: "json"})
//	logger.Info("Started", map[string]interface{}{"port": "8000"})
package infrastructure
