package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

const metricExportInterval = 10 * time.Second

// Instrument names shared by the webhook transport and the database layer.
const (
	MetricWebhookRequests = "feedbackgate.webhook.requests"
	MetricWebhookAccepted = "feedbackgate.webhook.accepted"
	MetricWebhookRejected = "feedbackgate.webhook.rejected"
	MetricWebhookSkipped  = "feedbackgate.webhook.skipped"
	MetricDBQueryDuration = "feedbackgate.db.query.duration"
)

// Attribute keys carried by webhook metrics and spans.
const (
	AttrProvider     = attribute.Key("feedbackgate.provider")
	AttrCompanyID    = attribute.Key("feedbackgate.company_id")
	AttrEndpointID   = attribute.Key("feedbackgate.endpoint_id")
	AttrRejectReason = attribute.Key("feedbackgate.reject_reason")
	AttrQueryName    = attribute.Key("db.query_name")
)

// OpenTelemetryConfig selects exporters for traces and metrics.
type OpenTelemetryConfig struct {
	Enabled           bool
	Environment       string
	OTLPEndpoint      string
	OTLPTraceHeaders  map[string]string
	OTLPMetricHeaders map[string]string
	ServiceName       string
	ServiceVer        string
	SamplingRatio     float64
	MetricsConsole    bool
}

// SetupOpenTelemetry configures global tracing, metrics and propagation for
// the gateway. The returned function flushes and shuts down every configured
// provider in reverse order.
func SetupOpenTelemetry(ctx context.Context, log *slog.Logger, cfg OpenTelemetryConfig) (func(context.Context) error, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	res, err := gatewayResource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var shutdownFns []func(context.Context) error
	tracerProvider, err := newTracerProvider(ctx, cfg, res)
	if err != nil {
		return nil, err
	}
	if tracerProvider != nil {
		otel.SetTracerProvider(tracerProvider)
		shutdownFns = append(shutdownFns, tracerProvider.Shutdown)
	}

	meterProvider, err := newMeterProvider(ctx, cfg, res)
	if err != nil {
		return nil, err
	}
	if meterProvider != nil {
		otel.SetMeterProvider(meterProvider)
		shutdownFns = append(shutdownFns, meterProvider.Shutdown)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	instrumentDefaultHTTPClient()

	log.Info("OpenTelemetry enabled",
		"service", cfg.ServiceName,
		"environment", cfg.Environment,
		"version", cfg.ServiceVer,
		"traces_enabled", tracerProvider != nil,
		"metrics_enabled", meterProvider != nil,
	)

	return func(shutdownCtx context.Context) error {
		var errs []error
		for i := len(shutdownFns) - 1; i >= 0; i-- {
			errs = append(errs, shutdownFns[i](shutdownCtx))
		}
		return errors.Join(errs...)
	}, nil
}

func gatewayResource(ctx context.Context, cfg OpenTelemetryConfig) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVer),
	}
	if cfg.Environment != "" {
		attrs = append(attrs, semconv.DeploymentEnvironmentName(cfg.Environment))
	}
	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(attrs...),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel resource: %w", err)
	}
	return res, nil
}

// newTracerProvider returns nil when no trace exporter is configured.
func newTracerProvider(ctx context.Context, cfg OpenTelemetryConfig, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	if cfg.OTLPEndpoint == "" && len(cfg.OTLPTraceHeaders) == 0 {
		return nil, nil
	}
	var options []otlptracehttp.Option
	if cfg.OTLPEndpoint != "" {
		options = append(options, otlptracehttp.WithEndpointURL(cfg.OTLPEndpoint))
	}
	if len(cfg.OTLPTraceHeaders) > 0 {
		options = append(options, otlptracehttp.WithHeaders(cfg.OTLPTraceHeaders))
	}
	exporter, err := otlptracehttp.New(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("create otlp trace exporter: %w", err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(configuredSampler(cfg.SamplingRatio)),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	), nil
}

// newMeterProvider returns nil when no metric reader is configured.
func newMeterProvider(ctx context.Context, cfg OpenTelemetryConfig, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	var readers []sdkmetric.Reader
	if cfg.OTLPEndpoint != "" {
		options := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpointURL(cfg.OTLPEndpoint)}
		if len(cfg.OTLPMetricHeaders) > 0 {
			options = append(options, otlpmetrichttp.WithHeaders(cfg.OTLPMetricHeaders))
		}
		exporter, err := otlpmetrichttp.New(ctx, options...)
		if err != nil {
			return nil, fmt.Errorf("create otlp metric exporter: %w", err)
		}
		readers = append(readers, sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(metricExportInterval)))
	}
	if cfg.MetricsConsole {
		exporter, err := stdoutmetric.New(stdoutmetric.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create stdout metric exporter: %w", err)
		}
		readers = append(readers, sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(metricExportInterval)))
	}
	if len(readers) == 0 {
		return nil, nil
	}

	options := []sdkmetric.Option{sdkmetric.WithResource(res)}
	for _, reader := range readers {
		options = append(options, sdkmetric.WithReader(reader))
	}
	options = append(options, sdkmetric.WithView(GatewayViews()...))
	return sdkmetric.NewMeterProvider(options...), nil
}

// GatewayViews keeps webhook counters to provider and reject reason, and
// gives query durations millisecond buckets sized for sqlite.
func GatewayViews() []sdkmetric.View {
	webhookAttrs := attribute.NewAllowKeysFilter(AttrProvider, AttrRejectReason)
	views := make([]sdkmetric.View, 0, 5)
	for _, name := range []string{MetricWebhookRequests, MetricWebhookAccepted, MetricWebhookRejected, MetricWebhookSkipped} {
		views = append(views, sdkmetric.NewView(
			sdkmetric.Instrument{Name: name, Kind: sdkmetric.InstrumentKindCounter},
			sdkmetric.Stream{AttributeFilter: webhookAttrs},
		))
	}
	views = append(views, sdkmetric.NewView(
		sdkmetric.Instrument{Name: MetricDBQueryDuration, Kind: sdkmetric.InstrumentKindHistogram},
		sdkmetric.Stream{
			Unit: "ms",
			Aggregation: sdkmetric.AggregationExplicitBucketHistogram{
				Boundaries: []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 1000},
			},
			AttributeFilter: attribute.NewAllowKeysFilter(AttrQueryName, AttrProvider),
		},
	))
	return views
}

func instrumentDefaultHTTPClient() {
	http.DefaultTransport = otelhttp.NewTransport(http.DefaultTransport)
	http.DefaultClient.Transport = http.DefaultTransport
}

// configuredSampler honours the parent decision, so a provider retry that
// carries trace context stays in the same trace.
func configuredSampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case ratio <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}
