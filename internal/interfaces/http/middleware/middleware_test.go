package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"thelight-api/internal/config"
	"thelight-api/internal/interfaces/http/dto"
	"thelight-api/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(e *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestRecovery_ReturnsGenericBody(t *testing.T) {
	e := gin.New()
	e.Use(Recovery())
	e.GET("/panic", func(*gin.Context) { panic("secret internal state") })

	w := serve(e, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != dto.MsgUnexpected {
		t.Fatalf("error = %q", body.Error)
	}
	if strings.Contains(w.Body.String(), "secret") {
		t.Fatal("panic value leaked to client")
	}
}

func TestRequestID(t *testing.T) {
	e := gin.New()
	e.Use(RequestID())
	e.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{"generated when absent", "", false},
		{"kept when valid", "req-123", true},
		{"replaced when too long", strings.Repeat("a", maxRequestIDLen+1), false},
		{"replaced when it has spaces", "bad id", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			w := serve(e, req)
			got := w.Header().Get(RequestIDHeader)
			if got == "" || got != w.Body.String() {
				t.Fatalf("header %q, context %q", got, w.Body.String())
			}
			if tt.keep != (got == tt.header) {
				t.Fatalf("request id = %q, keep = %v", got, tt.keep)
			}
		})
	}
}

func TestMetrics_SkipsConfiguredPaths(t *testing.T) {
	e := gin.New()
	e.Use(Metrics("/metrics"))
	e.GET("/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })
	e.GET("/api/books", func(c *gin.Context) { c.Status(http.StatusOK) })

	counted := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/books", "200")
	skipped := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/metrics", "200")
	unmatched := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	beforeCounted := testutil.ToFloat64(counted)
	beforeSkipped := testutil.ToFloat64(skipped)
	beforeUnmatched := testutil.ToFloat64(unmatched)

	serve(e, httptest.NewRequest(http.MethodGet, "/api/books", nil))
	serve(e, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	serve(e, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if got := testutil.ToFloat64(counted) - beforeCounted; got != 1 {
		t.Errorf("counted delta = %v", got)
	}
	if got := testutil.ToFloat64(skipped) - beforeSkipped; got != 0 {
		t.Errorf("skipped delta = %v", got)
	}
	if got := testutil.ToFloat64(unmatched) - beforeUnmatched; got != 1 {
		t.Errorf("unmatched delta = %v", got)
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.CORSConfig
		origin      string
		wantOrigin  string
		credentials string
	}{
		{"wildcard", config.CORSConfig{AllowedOrigins: []string{"*"}}, "https://example.org", "*", ""},
		{"listed origin", config.CORSConfig{AllowedOrigins: []string{"https://thelight.app"}}, "https://thelight.app", "https://thelight.app", "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := gin.New()
			e.Use(CORS(tt.cfg))
			e.GET("/api/books", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
			req.Header.Set("Origin", tt.origin)
			w := serve(e, req)
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("allow origin = %q, want %q", got, tt.wantOrigin)
			}
			if got := w.Header().Get("Access-Control-Allow-Credentials"); got != tt.credentials {
				t.Errorf("allow credentials = %q, want %q", got, tt.credentials)
			}
		})
	}
}
