package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestAggregator_AllHealthy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	agg := NewAggregator(time.Second)
	agg.Register("postgres", func(ctx context.Context) error { return nil })
	agg.Register("redis", func(ctx context.Context) error { return nil })

	router := gin.New()
	router.GET("/health", agg.Handler())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestAggregator_OneUnhealthy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	agg := NewAggregator(time.Second)
	agg.Register("postgres", func(ctx context.Context) error { return nil })
	agg.Register("redis", func(ctx context.Context) error { return errors.New("connection refused") })

	router := gin.New()
	router.GET("/health", agg.Handler())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}

func TestAggregator_CheckTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	agg := NewAggregator(10 * time.Millisecond)
	agg.Register("slow", func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	})

	router := gin.New()
	router.GET("/health", agg.Handler())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}
