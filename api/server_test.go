package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"textkit/api/middleware"
	"textkit/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPI(t *testing.T) {
	api, router := NewAPI()

	require.NotNil(t, api)
	require.NotNil(t, router)
}

func TestNewAPI_HasCorrectInfo(t *testing.T) {
	api, _ := NewAPI()

	info := api.OpenAPI().Info
	assert.Equal(t, "Textkit API", info.Title)
	assert.Equal(t, "1.0.0", info.Version)
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.oai.openapi+json", w.Header().Get("Content-Type"))
}

func TestAPI_DocsEndpoint(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html", w.Header().Get("Content-Type"))
}

func TestAPI_CORSPreflight(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest(http.MethodOptions, "/html/strip", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

type pingOutput struct {
	Body struct {
		Feed bool `json:"feed"`
	}
}

func registerPing(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		out.Body.Feed = featureflags.IsEnabled(ctx, featureflags.FeedExcerpts)
		return out, nil
	})
}

func TestNewAPIWithMiddleware_RateLimits(t *testing.T) {
	limiter := middleware.NewRateLimiter(1, time.Minute)
	defer limiter.Close()
	api, router := NewAPIWithMiddleware(APIConfig{Limiter: limiter})
	registerPing(api)

	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, "request %d", i)
	}
}

func TestNewAPIWithMiddleware_PlacesFlagsInContext(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.FeedExcerpts: false,
	})
	api, router := NewAPIWithMiddleware(APIConfig{Flags: flags})
	registerPing(api)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"feed":false`)
}
