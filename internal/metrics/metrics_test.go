package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestHandlerRecordsRequests(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(m.Handler())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}

	got := testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "/test", "200"))
	if got != 3 {
		t.Errorf("requests_total = %v, want 3", got)
	}
}

func TestHandlerLabelsUnmatchedRoutes(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(m.Handler())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	got := testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404"))
	if got != 1 {
		t.Errorf("requests_total for unmatched route = %v, want 1", got)
	}
}
