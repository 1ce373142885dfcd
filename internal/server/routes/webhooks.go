package routes

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fr0stylo/feedbackgate/internal/app/services"
	"github.com/fr0stylo/feedbackgate/internal/webhooks"
)

// WebhookRoutes registers provider webhook endpoints.
type WebhookRoutes struct {
	handler *webhooks.Handler
}

// NewWebhookRoutes constructs webhook routes.
func NewWebhookRoutes(handler *webhooks.Handler) *WebhookRoutes {
	return &WebhookRoutes{handler: handler}
}

// RegisterRoutes registers webhook endpoints. The path after the provider is
// tenant-chosen and matched against the configured endpoint URL. A delivery
// without that segment would match any tenant's endpoint and is refused.
func (w *WebhookRoutes) RegisterRoutes(s *echo.Echo) {
	s.POST("/webhooks/:provider", w.handleWebhook)
	s.POST("/webhooks/:provider/*", w.handleWebhook)
}

func (w *WebhookRoutes) handleWebhook(c echo.Context) error {
	if strings.Trim(c.Param("*"), "/") == "" {
		webhooks.WriteDispatchError(c.Response(), services.ErrEndpointNotFound)
		return nil
	}
	return w.handler.Handle(c.Response(), c.Request(), c.Param("provider"))
}
