package observability

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	dbTracerName      = "feedbackgate/db"
	webhookTracerName = "feedbackgate/webhooks"
)

type contextKey string

const (
	companyIDKey  contextKey = "observability.company_id"
	endpointIDKey contextKey = "observability.endpoint_id"
	providerKey   contextKey = "observability.provider"
	requestIDKey  contextKey = "observability.request_id"
	routeKey      contextKey = "observability.route"
)

// Span is the application-level tracing span contract.
type Span interface {
	End()
	RecordError(error)
}

type otelSpan struct {
	inner trace.Span
}

// StartDBSpan starts a database tracing span for one query operation.
func StartDBSpan(ctx context.Context, queryName, operation string) (context.Context, Span) {
	queryName = strings.TrimSpace(queryName)
	if queryName == "" {
		queryName = "unknown"
	}
	attrs := []attribute.KeyValue{
		attribute.String("db.system.name", "sqlite"),
		AttrQueryName.String(queryName),
		attribute.String("db.operation", strings.TrimSpace(operation)),
	}
	attrs = append(attrs, webhookAttributes(ctx)...)

	ctx, span := otel.Tracer(dbTracerName).Start(ctx, "db."+queryName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)

	return ctx, otelSpan{inner: span}
}

// Gateway pipeline stages, used as webhook span name suffixes.
const (
	StageResolve   = "resolve"
	StageVerify    = "verify"
	StageNormalize = "normalize"
	StageProcess   = "process"
	StageReplay    = "replay"
)

// StartWebhookSpan starts an internal span for one gateway pipeline stage.
func StartWebhookSpan(ctx context.Context, stage string) (context.Context, Span) {
	stage = strings.TrimSpace(stage)
	if stage == "" {
		stage = "unknown"
	}
	ctx, span := otel.Tracer(webhookTracerName).Start(ctx, "webhook."+stage,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(webhookAttributes(ctx)...),
	)
	return ctx, otelSpan{inner: span}
}

// WithProvider records the provider named by the inbound request.
func WithProvider(ctx context.Context, provider string) context.Context {
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return ctx
	}
	ctx = context.WithValue(ctx, providerKey, provider)
	setSpanAttributes(ctx, AttrProvider.String(provider))
	return ctx
}

// WithEndpointIdentity enriches context and current span with the resolved
// tenant and endpoint.
func WithEndpointIdentity(ctx context.Context, companyID, endpointID int64) context.Context {
	attrs := make([]attribute.KeyValue, 0, 2)
	if companyID > 0 {
		ctx = context.WithValue(ctx, companyIDKey, companyID)
		attrs = append(attrs, AttrCompanyID.Int64(companyID))
	}
	if endpointID > 0 {
		ctx = context.WithValue(ctx, endpointIDKey, endpointID)
		attrs = append(attrs, AttrEndpointID.Int64(endpointID))
	}
	setSpanAttributes(ctx, attrs...)
	return ctx
}

// WithRequestMetadata enriches context and current span with request metadata.
func WithRequestMetadata(ctx context.Context, requestID, route string) context.Context {
	requestID = strings.TrimSpace(requestID)
	route = strings.TrimSpace(route)
	attrs := make([]attribute.KeyValue, 0, 2)
	if requestID != "" {
		ctx = context.WithValue(ctx, requestIDKey, requestID)
		attrs = append(attrs, attribute.String("request.id", requestID))
	}
	if route != "" {
		ctx = context.WithValue(ctx, routeKey, route)
		attrs = append(attrs, attribute.String("http.route", route))
	}
	setSpanAttributes(ctx, attrs...)
	return ctx
}

// CompanyIDFromContext extracts the resolved tenant id.
func CompanyIDFromContext(ctx context.Context) (int64, bool) {
	value, ok := ctx.Value(companyIDKey).(int64)
	return value, ok && value > 0
}

// EndpointIDFromContext extracts the resolved endpoint id.
func EndpointIDFromContext(ctx context.Context) (int64, bool) {
	value, ok := ctx.Value(endpointIDKey).(int64)
	return value, ok && value > 0
}

// ProviderFromContext extracts the provider named by the request.
func ProviderFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(providerKey).(string)
	return value, ok && value != ""
}

// RequestIDFromContext extracts request id.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(requestIDKey).(string)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

// RouteFromContext extracts normalized route path.
func RouteFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(routeKey).(string)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

func webhookAttributes(ctx context.Context) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 3)
	if provider, ok := ProviderFromContext(ctx); ok {
		attrs = append(attrs, AttrProvider.String(provider))
	}
	if companyID, ok := CompanyIDFromContext(ctx); ok {
		attrs = append(attrs, AttrCompanyID.Int64(companyID))
	}
	if endpointID, ok := EndpointIDFromContext(ctx); ok {
		attrs = append(attrs, AttrEndpointID.Int64(endpointID))
	}
	return attrs
}

func setSpanAttributes(ctx context.Context, attrs ...attribute.KeyValue) {
	if len(attrs) == 0 {
		return
	}
	span := trace.SpanFromContext(ctx)
	if span == nil {
		return
	}
	span.SetAttributes(attrs...)
}

func (s otelSpan) End() {
	if s.inner == nil {
		return
	}
	s.inner.End()
}

func (s otelSpan) RecordError(err error) {
	if s.inner == nil || err == nil {
		return
	}
	s.inner.RecordError(err)
	s.inner.SetStatus(codes.Error, err.Error())
}
