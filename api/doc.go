// Package api provides the HTTP API layer for Textkit.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers for html, text, youtube and excerpt routes
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request logging, rate limiting and feature flag injection
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The JSON spec is available at /openapi.json and the interactive docs at /docs.
//
// 2. Request/Response Validation
//
// Huma validates bodies from struct tags:
//
//	type ShortenRequest struct {
//	    Content  string  `json:"content" maxLength:"1048576"`
//	    Length   *int    `json:"length,omitempty" minimum:"0"`
//	    Ellipsis *string `json:"ellipsis,omitempty" maxLength:"64"`
//	}
//
// 3. Middleware Support
//
// - Request logging with X-Request-ID propagation
// - Rate limiting per client IP, switchable with the rate_limit_enabled flag
// - CORS handling
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//
//	handlers.NewHTMLHandler(markupService, handlers.DefaultMarkupDefaults()).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format:
//
//	{
//	    "status": 422,
//	    "title": "Unprocessable Entity",
//	    "detail": "Content could not be parsed"
//	}
//
// Validation errors map to 400, unknown videos to 404, unparseable content to 422
// and disabled excerpt endpoints to 503.
package api
