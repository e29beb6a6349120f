package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware())
	router.GET("/orders/:order_id/", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/orders/:order_id/", "200"))
	for _, path := range []string{"/orders/1/", "/orders/2/"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/orders/:order_id/", "200"))
	assert.Equal(t, before+2, after)
}

func TestHandlerExposesDomainCounters(t *testing.T) {
	OrdersSubmitted.WithLabelValues(ResultCreated).Inc()
	OrdersCompleted.Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ordermanager_orders_submitted_total")
	assert.Contains(t, rec.Body.String(), "ordermanager_orders_completed_total")
}
