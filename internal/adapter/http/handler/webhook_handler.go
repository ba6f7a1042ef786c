package handler

import (
	"net/http"
	"strings"

	"github.com/cedbrasil/enrolld/internal/adapter/http/dto"
	"github.com/cedbrasil/enrolld/internal/core/domain"
	"github.com/cedbrasil/enrolld/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// WebhookHandler receives payment processor notifications.
type WebhookHandler struct {
	reconciler ports.WebhookReconciler
	log        zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(reconciler ports.WebhookReconciler, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{reconciler: reconciler, log: log.With().Str("component", "webhook_handler").Logger()}
}

// Handle handles POST /webhook/mp. The processor delivers the same event in
// two shapes (query parameters or a JSON body); both are accepted. Once
// authenticated the response is always 200 so the processor does not storm
// retries; a failed delivery is retried through the processor's own schedule
// after the claim is released.
func (h *WebhookHandler) Handle(c *gin.Context) {
	event, ok := h.parseEvent(c)
	if !ok {
		h.log.Warn().Str("query", c.Request.URL.RawQuery).Msg("unparseable webhook delivery")
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if err := h.reconciler.Handle(c.Request.Context(), event); err != nil {
		h.log.Error().Err(err).
			Str("topic", string(event.Topic)).
			Str("resource_id", event.ResourceID).
			Msg("webhook processing failed")
		c.JSON(http.StatusOK, gin.H{"status": "error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseEvent extracts topic and resource id from either delivery shape.
func (h *WebhookHandler) parseEvent(c *gin.Context) (domain.WebhookEvent, bool) {
	topic := c.Query("topic")
	if topic == "" {
		topic = c.Query("type")
	}
	id := c.Query("id")
	if id == "" {
		id = c.Query("data.id")
	}

	if topic == "" || id == "" {
		var body dto.WebhookBody
		if err := c.ShouldBindJSON(&body); err == nil {
			if topic == "" {
				topic = body.Type
				if topic == "" {
					topic = body.Topic
				}
				if topic == "" && body.Action != "" {
					topic, _, _ = strings.Cut(body.Action, ".")
				}
			}
			if id == "" {
				id = body.Data.ID
				if id == "" {
					id = body.ID
				}
			}
		}
	}

	if topic == "" || id == "" {
		return domain.WebhookEvent{}, false
	}
	return domain.WebhookEvent{Topic: domain.EventTopic(topic), ResourceID: id}, true
}
