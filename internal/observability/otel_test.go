package observability

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestGatewayViewsKeepProviderAndReasonOnly(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithView(GatewayViews()...),
	)
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })

	rejected, err := provider.Meter("test").Int64Counter(MetricWebhookRejected)
	if err != nil {
		t.Fatalf("create counter: %v", err)
	}
	rejected.Add(ctx, 1, metric.WithAttributes(
		AttrProvider.String("square"),
		AttrRejectReason.String("invalid_signature"),
		AttrEndpointID.Int64(42),
	))

	var collected metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &collected); err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(collected.ScopeMetrics) != 1 || len(collected.ScopeMetrics[0].Metrics) != 1 {
		t.Fatalf("unexpected metrics: %+v", collected.ScopeMetrics)
	}
	sum, ok := collected.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64])
	if !ok || len(sum.DataPoints) != 1 {
		t.Fatalf("unexpected data: %+v", collected.ScopeMetrics[0].Metrics[0].Data)
	}
	attrs := sum.DataPoints[0].Attributes
	if _, found := attrs.Value(AttrEndpointID); found {
		t.Fatalf("endpoint id must be filtered from webhook counters")
	}
	if value, _ := attrs.Value(AttrProvider); value.AsString() != "square" {
		t.Fatalf("expected provider attribute, got %v", value)
	}
	if value, _ := attrs.Value(AttrRejectReason); value.AsString() != "invalid_signature" {
		t.Fatalf("expected reject reason attribute, got %v", value)
	}
}

func TestSetupOpenTelemetryDisabledIsNoop(t *testing.T) {
	shutdown, err := SetupOpenTelemetry(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)), OpenTelemetryConfig{})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
