package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pinglanyi/A2UI/internal/domain/catalog"
	"github.com/pinglanyi/A2UI/internal/domain/prompt"
	"github.com/pinglanyi/A2UI/internal/infrastructure/monitoring"
	"github.com/pinglanyi/A2UI/internal/infrastructure/tracing"
	"github.com/pinglanyi/A2UI/internal/providers/model"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	store   catalog.Store
	builder *prompt.Builder
	client  model.Client
	tracer  *tracing.Tracer
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(
	store catalog.Store,
	builder *prompt.Builder,
	client model.Client,
	tracer *tracing.Tracer,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		store:   store,
		builder: builder,
		client:  client,
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "A2UI Dispatch Service (Go)",
		"version": "0.1.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	snap, loaded := h.store.Get()

	catalogInfo := gin.H{"loaded": loaded}
	if loaded {
		catalogInfo["announcement_id"] = snap.AnnouncementID
		catalogInfo["received_at"] = snap.ReceivedAt
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"catalog": catalogInfo,
		"provider": gin.H{
			"name":  h.client.Name(),
			"model": h.client.Model(),
		},
	})
}
