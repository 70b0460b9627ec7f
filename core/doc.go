// Package core contains the business logic for Textkit.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Excerpt models (FeedExcerpt, ItemExcerpt, ArticleExcerpt)
// - markup: Stripping and shortening service with result caching
// - excerpt: Feed and article excerpt service built on markup
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, logger) and services
//
// # Design Principles
//
// - No web framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:  myCache,  // implements interfaces.Cache
//	    Logger: myLogger, // implements interfaces.Logger
//	}
//
//	markupService := markup.NewService(deps, nil, time.Hour)
//	excerptService := excerpt.NewService(markupService, myLogger)
//
//	feed, err := excerptService.FeedExcerpts(ctx, feedXML, 300, "...")
package core
