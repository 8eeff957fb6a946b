package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware creates a Gin middleware for metrics collection
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		// Get request size
		reqSize := c.Request.ContentLength
		if reqSize < 0 {
			reqSize = 0
		}

		// Process request
		c.Next()

		// Get response data
		duration := time.Since(start)
		status := strconv.Itoa(c.Writer.Status())
		respSize := int64(c.Writer.Size())

		// Record metrics
		metrics.RecordHTTPRequest(method, path, status, duration, reqSize, respSize)
	}
}

// Timer measures one model provider call and tracks it in flight.
type Timer struct {
	start    time.Time
	metrics  *Metrics
	provider string
	pass     string
}

// NewTimer starts timing a provider call.
func NewTimer(metrics *Metrics, provider, pass string) *Timer {
	metrics.ModelInFlight.Inc()
	return &Timer{
		start:    time.Now(),
		metrics:  metrics,
		provider: provider,
		pass:     pass,
	}
}

// Stop stops the timer and records the duration
func (t *Timer) Stop(status string) {
	t.metrics.ModelInFlight.Dec()
	duration := time.Since(t.start)
	t.metrics.RecordModelCall(t.provider, t.pass, status, duration)
}
