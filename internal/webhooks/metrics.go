package webhooks

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/fr0stylo/feedbackgate/internal/app/services"
	"github.com/fr0stylo/feedbackgate/internal/observability"
)

type webhookMetrics struct {
	requests metric.Int64Counter
	accepted metric.Int64Counter
	rejected metric.Int64Counter
	skipped  metric.Int64Counter
}

func newWebhookMetrics() webhookMetrics {
	meter := otel.Meter("github.com/fr0stylo/feedbackgate/internal/webhooks")
	requests, _ := meter.Int64Counter(observability.MetricWebhookRequests)
	accepted, _ := meter.Int64Counter(observability.MetricWebhookAccepted)
	rejected, _ := meter.Int64Counter(observability.MetricWebhookRejected)
	skipped, _ := meter.Int64Counter(observability.MetricWebhookSkipped)
	return webhookMetrics{
		requests: requests,
		accepted: accepted,
		rejected: rejected,
		skipped:  skipped,
	}
}

func (m webhookMetrics) recordRequest(ctx context.Context, provider string) {
	m.requests.Add(ctx, 1, metric.WithAttributes(observability.AttrProvider.String(provider)))
}

func (m webhookMetrics) recordAccepted(ctx context.Context, provider string) {
	m.accepted.Add(ctx, 1, metric.WithAttributes(observability.AttrProvider.String(provider)))
}

func (m webhookMetrics) recordSkipped(ctx context.Context, provider string) {
	m.skipped.Add(ctx, 1, metric.WithAttributes(observability.AttrProvider.String(provider)))
}

func (m webhookMetrics) recordRejected(ctx context.Context, provider string, reason services.DispatchErrorKind) {
	m.rejected.Add(ctx, 1, metric.WithAttributes(
		observability.AttrProvider.String(provider),
		observability.AttrRejectReason.String(string(reason)),
	))
}
