package http

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pinglanyi/A2UI/internal/domain/prompt"
	"github.com/pinglanyi/A2UI/internal/domain/protocol"
	"github.com/pinglanyi/A2UI/internal/infrastructure/monitoring"
	apierrors "github.com/pinglanyi/A2UI/internal/shared/errors"
)

// Model call passes, used as metric and span labels.
const (
	passDescribeImage = "describe_image"
	passGenerateUI    = "generate_ui"
)

// A2UI dispatches one client message: a capability announcement, a user
// action, or a generation request.
func (h *Handlers) A2UI(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.fail(c, protocol.KindUnknown, apierrors.NewParseError(err.Error()))
		return
	}

	msg, err := protocol.Classify(body)
	if err != nil {
		h.fail(c, msg.Kind, err)
		return
	}

	switch msg.Kind {
	case protocol.KindCatalog:
		snap := h.store.Put(msg.Catalog)
		h.metrics.RecordCatalogAnnouncement()
		h.metrics.RecordDispatch(msg.Kind.String(), "ok")
		h.logger.Info("Catalog announced",
			zap.String("announcement_id", snap.AnnouncementID),
			zap.Int("bytes", len(msg.Catalog)),
		)
		c.JSON(http.StatusOK, protocol.NewModelResponse(protocol.CatalogAckText))

	case protocol.KindUserAction:
		// Accepted and dropped: actions are handled client-side today.
		h.metrics.RecordDispatch(msg.Kind.String(), "ok")
		h.logger.Debug("User action received", zap.Int("bytes", len(msg.UserAction)))
		c.Status(http.StatusNoContent)

	case protocol.KindGeneration:
		h.generate(c, msg.Generation)

	default:
		h.fail(c, msg.Kind, apierrors.NewInvalidRequestError(""))
	}
}

// generate runs the generation pipeline: an optional image-description
// call, then the UI-generation call. The second prompt depends on the
// first call's output, so the calls are strictly sequential.
func (h *Handlers) generate(c *gin.Context, req *protocol.GenerationRequest) {
	snap, ok := h.store.Get()
	if !ok {
		h.fail(c, protocol.KindGeneration, apierrors.NewInvalidRequestError(""))
		return
	}

	ctx := c.Request.Context()

	imageDescription := ""
	if req.ImageData != "" {
		image, err := protocol.ParseDataURI(req.ImageData)
		if err != nil {
			h.fail(c, protocol.KindGeneration, err)
			return
		}

		imageDescription, err = h.invoke(ctx, passDescribeImage, h.builder.ImageDescription(snap.Catalog, image))
		if err != nil {
			h.fail(c, protocol.KindGeneration, err)
			return
		}
	}

	text, err := h.invoke(ctx, passGenerateUI, h.builder.UIGeneration(snap.Catalog, imageDescription, req.Instructions))
	if err != nil {
		h.fail(c, protocol.KindGeneration, err)
		return
	}

	h.metrics.RecordDispatch(protocol.KindGeneration.String(), "ok")
	c.JSON(http.StatusOK, protocol.NewModelResponse(text))
}

// invoke runs one provider call with a span and a timer around it.
func (h *Handlers) invoke(ctx context.Context, pass string, p prompt.Prompt) (string, error) {
	span, ctx := h.tracer.StartSpan(ctx, "model."+pass)
	span.SetTag("provider", h.client.Name())
	span.SetTag("model", h.client.Model())
	defer func() {
		span.Finish()
		h.tracer.Submit(span)
	}()

	timer := monitoring.NewTimer(h.metrics, h.client.Name(), pass)
	text, err := h.client.Generate(ctx, p)
	if err != nil {
		timer.Stop("error")
		span.SetError(err)
		return "", err
	}
	timer.Stop("success")
	return text, nil
}

// fail reports any dispatch failure through the single 400 envelope.
func (h *Handlers) fail(c *gin.Context, kind protocol.Kind, err error) {
	h.metrics.RecordDispatch(kind.String(), "error")
	h.logger.Warn("Message rejected",
		zap.String("kind", kind.String()),
		zap.Error(err),
	)
	c.JSON(http.StatusBadRequest, protocol.NewErrorResponse(err.Error()))
}
