package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(PrometheusMiddleware())
	r.GET("/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(RequestsTotal.WithLabelValues(http.MethodGet, "/v1/ping", "200"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	after := testutil.ToFloat64(RequestsTotal.WithLabelValues(http.MethodGet, "/v1/ping", "200"))
	if after != before+1 {
		t.Fatalf("expected counter to increase by 1, got %v -> %v", before, after)
	}
}

func TestPrometheusMiddleware_Unmatched(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(PrometheusMiddleware())

	before := testutil.ToFloat64(RequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if got := testutil.ToFloat64(RequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")); got != before+1 {
		t.Fatalf("expected unmatched counter to increase, got %v -> %v", before, got)
	}
}
