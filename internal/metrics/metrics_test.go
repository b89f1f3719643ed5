package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/items/:id", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	for _, path := range []string{"/items/1", "/items/2", "/nowhere"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/items/:id", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")), 0)
}

func TestHandler_Exposes(t *testing.T) {
	m := metrics.New()
	m.ContentLoadFailures.WithLabelValues("achievements.json").Inc()
	m.RevealStreamsActive.Inc()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(body)

	assert.True(t, strings.Contains(text, `portfolio_content_load_failures_total{resource="achievements.json"} 1`))
	assert.True(t, strings.Contains(text, "portfolio_reveal_streams_active 1"))
}

func TestNew_IndependentRegistries(t *testing.T) {
	a := metrics.New()
	b := metrics.New()

	a.VisitsRecorded.Inc()
	assert.InDelta(t, 1, testutil.ToFloat64(a.VisitsRecorded), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(b.VisitsRecorded), 0)
	assert.NotSame(t, a.Registry(), b.Registry())
}
