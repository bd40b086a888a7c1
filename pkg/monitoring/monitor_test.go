package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddlewareCountsByRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/simulados/:testId/detalhes", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	counter := RequestCounter.WithLabelValues("GET", "/simulados/:testId/detalhes", "200")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/simulados/9/detalhes", nil)
	r.ServeHTTP(w, req)

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("counter delta = %v, want 1 under the route pattern label", got)
	}
}

func TestMetricsMiddlewareRecordsErrorStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/simulados", func(c *gin.Context) {
		c.Status(http.StatusBadRequest)
	})

	counter := RequestCounter.WithLabelValues("GET", "/simulados", "400")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/simulados", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("counter delta = %v, want 1 for the 400 label", got)
	}
}

func TestWebsocketClientsGauge(t *testing.T) {
	before := testutil.ToFloat64(WebsocketClients)
	WebsocketClients.Inc()
	WebsocketClients.Inc()
	WebsocketClients.Dec()
	if got := testutil.ToFloat64(WebsocketClients) - before; got != 1 {
		t.Errorf("gauge delta = %v, want 1", got)
	}
}
