// Package health aggregates dependency health checks.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Checker reports whether a single dependency is reachable.
type Checker func(ctx context.Context) error

// Aggregator runs named checkers and reports overall service health.
type Aggregator struct {
	checkers map[string]Checker
	timeout  time.Duration
}

// NewAggregator creates an Aggregator with a per-check timeout.
func NewAggregator(timeout time.Duration) *Aggregator {
	return &Aggregator{
		checkers: make(map[string]Checker),
		timeout:  timeout,
	}
}

// Register adds a named checker.
func (a *Aggregator) Register(name string, checker Checker) {
	a.checkers[name] = checker
}

// Handler returns a gin handler that reports per-dependency status. The
// response is 200 when every check passes and 503 otherwise.
func (a *Aggregator) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		results := make(map[string]string, len(a.checkers))
		healthy := true

		for name, checker := range a.checkers {
			ctx, cancel := context.WithTimeout(c.Request.Context(), a.timeout)
			err := checker(ctx)
			cancel()

			if err != nil {
				results[name] = err.Error()
				healthy = false
			} else {
				results[name] = "ok"
			}
		}

		status := http.StatusOK
		overall := "healthy"
		if !healthy {
			status = http.StatusServiceUnavailable
			overall = "unhealthy"
		}

		c.JSON(status, gin.H{
			"status": overall,
			"checks": results,
		})
	}
}
