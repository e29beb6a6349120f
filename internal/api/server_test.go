package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"ordermanager/internal/app/config"
	"ordermanager/internal/app/middleware"
	"ordermanager/internal/app/repository/repotest"
)

func newTestRouter(t *testing.T, origins ...string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, _ := repotest.New(t)
	cfg := &config.Config{
		CORS: config.CORSConfig{AllowOrigins: origins},
		JWT: config.JWTConfig{
			Token:         "test-secret",
			ExpiresIn:     time.Hour,
			SigningMethod: jwt.SigningMethodHS256,
		},
	}

	router, err := NewRouter(cfg, repo, nil, nil)
	require.NoError(t, err)
	return router
}

func get(router *gin.Engine, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouterServiceEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := get(router, "/ping", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	rec = get(router, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ordermanager_http_requests_total")

	rec = get(router, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2.0", gjson.Get(rec.Body.String(), "swagger").String())
	assert.Contains(t, rec.Body.String(), `"/api/v1/orders/{id}/"`)

	rec = get(router, "/login", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(router, "/orders/", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestRouterCORS(t *testing.T) {
	router := newTestRouter(t, "https://shop.example")

	rec := get(router, "/ping", http.Header{"Origin": {"https://shop.example"}})
	assert.Equal(t, "https://shop.example", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = get(router, "/ping", http.Header{"Origin": {"https://evil.example"}})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	open := newTestRouter(t, "*")
	rec = get(open, "/ping", http.Header{"Origin": {"https://any.example"}})
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
