package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics("omi_relay")

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/conversation/:sessionId", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	for _, path := range []string{"/conversation/a", "/conversation/b", "/nope"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	m.ObserveOutcome("answered")
	m.ObserveOutcome("ignored")
	m.ObserveOutcome("ignored")

	t.Run("route label uses the pattern", func(t *testing.T) {
		if got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/conversation/:sessionId", "200")); got != 2 {
			t.Errorf("count = %v, want 2", got)
		}
		if got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "unmatched", "404")); got != 1 {
			t.Errorf("unmatched count = %v, want 1", got)
		}
	})

	t.Run("outcomes", func(t *testing.T) {
		if got := testutil.ToFloat64(m.Outcomes.WithLabelValues("ignored")); got != 2 {
			t.Errorf("ignored = %v", got)
		}
	})

	t.Run("exposition", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		body := w.Body.String()
		if w.Code != http.StatusOK || !strings.Contains(body, `omi_relay_webhook_outcomes_total{status="answered"} 1`) {
			t.Errorf("status = %d, body missing outcome counter", w.Code)
		}
	})

	t.Run("independent registries", func(t *testing.T) {
		other := NewMetrics("omi_relay")
		if got := testutil.ToFloat64(other.Outcomes.WithLabelValues("ignored")); got != 0 {
			t.Errorf("fresh registry shares state: %v", got)
		}
	})
}
