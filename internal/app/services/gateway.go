package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fr0stylo/feedbackgate/internal/app/domain"
	"github.com/fr0stylo/feedbackgate/internal/app/ports"
	"github.com/fr0stylo/feedbackgate/internal/observability"
	"github.com/fr0stylo/feedbackgate/internal/providers"
)

// DispatchCommand is one inbound webhook delivery.
type DispatchCommand struct {
	Provider string
	Path     string
	Headers  http.Header
	Body     []byte
}

// DispatchResult is the outcome of a delivery that was not rejected.
type DispatchResult struct {
	Skipped     bool
	Provider    string
	EndpointID  int64
	Appointment ports.Appointment
}

// Gateway orchestrates resolve, verify, normalize, process and health update
// for every inbound delivery.
type Gateway struct {
	resolver  *EndpointResolver
	endpoints ports.EndpointStore
	processor *EventProcessor
	log       *slog.Logger
	now       func() time.Time
}

// GatewayOption customizes a Gateway.
type GatewayOption func(*Gateway)

// WithGatewayClock overrides the clock used for endpoint health.
func WithGatewayClock(now func() time.Time) GatewayOption {
	return func(g *Gateway) { g.now = now }
}

// NewGateway constructs the dispatch gateway.
func NewGateway(registry *providers.Registry, endpoints ports.EndpointStore, processor *EventProcessor, log *slog.Logger, opts ...GatewayOption) *Gateway {
	if log == nil {
		log = slog.Default()
	}
	g := &Gateway{
		resolver:  NewEndpointResolver(registry, endpoints),
		endpoints: endpoints,
		processor: processor,
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Dispatch handles one delivery. Resolution and authentication failures are
// returned before anything is written.
func (g *Gateway) Dispatch(ctx context.Context, cmd DispatchCommand) (DispatchResult, error) {
	ctx = observability.WithProvider(ctx, cmd.Provider)

	provider, endpoint, err := g.resolve(ctx, cmd.Provider, cmd.Path)
	if err != nil {
		return DispatchResult{}, err
	}
	ctx = observability.WithEndpointIdentity(ctx, endpoint.CompanyID, endpoint.ID)

	if err := g.verify(ctx, provider, endpoint, cmd.Headers, cmd.Body); err != nil {
		g.log.WarnContext(ctx, "Webhook signature rejected", "error", err)
		return DispatchResult{}, err
	}

	return g.run(ctx, provider, endpoint, cmd.Body)
}

func (g *Gateway) resolve(ctx context.Context, providerName, path string) (providers.Provider, ports.Endpoint, error) {
	ctx, span := observability.StartWebhookSpan(ctx, observability.StageResolve)
	defer span.End()

	provider, endpoint, err := g.resolver.Resolve(ctx, providerName, path)
	if err != nil {
		span.RecordError(err)
	}
	return provider, endpoint, err
}

func (g *Gateway) verify(ctx context.Context, provider providers.Provider, endpoint ports.Endpoint, headers http.Header, body []byte) error {
	ctx, span := observability.StartWebhookSpan(ctx, observability.StageVerify)
	defer span.End()

	signature := headers.Get(provider.SignatureHeader())
	if signature == "" {
		span.RecordError(ErrMissingSignature)
		return ErrMissingSignature
	}

	secret, err := g.signingSecret(ctx, provider, endpoint)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if !provider.Verify(secret, body, signature) {
		span.RecordError(ErrInvalidSignature)
		return ErrInvalidSignature
	}
	return nil
}

// signingSecret fails closed when the credential cannot be found. A store
// failure is returned unclassified so it surfaces as an internal error.
func (g *Gateway) signingSecret(ctx context.Context, provider providers.Provider, endpoint ports.Endpoint) (string, error) {
	credential := provider.Credential()
	if credential.Source == providers.CredentialEndpointSecret {
		if endpoint.Secret == "" {
			return "", ErrInvalidCredentials
		}
		return endpoint.Secret, nil
	}

	integration, err := g.endpoints.GetIntegration(ctx, endpoint.CompanyID, provider.Name())
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return "", ErrIntegrationNotFound
		}
		g.log.ErrorContext(ctx, "Failed to load integration credentials", "error", err)
		return "", fmt.Errorf("load integration: %w", err)
	}
	secret := integration.Credentials[credential.Field]
	if secret == "" {
		return "", ErrInvalidCredentials
	}
	return secret, nil
}

// run is the authenticated part of the pipeline shared with Replay.
func (g *Gateway) run(ctx context.Context, provider providers.Provider, endpoint ports.Endpoint, body []byte) (DispatchResult, error) {
	result := DispatchResult{Provider: provider.Name(), EndpointID: endpoint.ID}

	event, ok, err := g.normalize(ctx, provider, body)
	if err != nil {
		if auditErr := g.processor.RecordFailure(ctx, endpoint.ID, provider.EventType(), body, err); auditErr != nil {
			err = errors.Join(err, auditErr)
		}
		g.recordHealth(ctx, endpoint, false)
		return result, err
	}
	if !ok {
		g.log.InfoContext(ctx, "Webhook skipped")
		result.Skipped = true
		return result, nil
	}

	processCtx, span := observability.StartWebhookSpan(ctx, observability.StageProcess)
	appointment, err := g.processor.Process(processCtx, ProcessCommand{
		CompanyID:  endpoint.CompanyID,
		EndpointID: endpoint.ID,
		Event:      event,
		RawPayload: body,
	})
	if err != nil {
		span.RecordError(err)
		span.End()
		g.log.ErrorContext(ctx, "Webhook processing failed", "error", err)
		g.recordHealth(ctx, endpoint, false)
		return result, err
	}
	span.End()

	g.recordHealth(ctx, endpoint, true)
	result.Appointment = appointment
	return result, nil
}

func (g *Gateway) normalize(ctx context.Context, provider providers.Provider, body []byte) (domain.AppointmentEvent, bool, error) {
	_, span := observability.StartWebhookSpan(ctx, observability.StageNormalize)
	defer span.End()

	event, ok, err := provider.Normalize(body)
	if err != nil {
		span.RecordError(err)
		g.log.WarnContext(ctx, "Webhook payload rejected", "error", err)
		return domain.AppointmentEvent{}, false, err
	}
	return event, ok, nil
}

// recordHealth persists the endpoint health transition. The audit log is the
// source of truth, so a failed write is only logged. Failures are counted by
// the store so concurrent deliveries do not overwrite each other's increment.
func (g *Gateway) recordHealth(ctx context.Context, endpoint ports.Endpoint, success bool) {
	writeCtx := context.WithoutCancel(ctx)
	if success {
		next := domain.OnSuccess(endpoint.EndpointHealth, g.now())
		if err := g.endpoints.RecordEndpointSuccess(writeCtx, endpoint.ID, next); err != nil {
			g.log.ErrorContext(ctx, "Failed to update endpoint health", "error", err, "status", next.Status)
		}
		return
	}

	next := domain.OnFailure(endpoint.EndpointHealth)
	stored, err := g.endpoints.RecordEndpointFailure(writeCtx, endpoint.ID, next.Status)
	if err != nil {
		g.log.ErrorContext(ctx, "Failed to update endpoint health", "error", err, "status", next.Status)
		return
	}
	g.log.DebugContext(ctx, "Endpoint failure recorded", "error_count", stored.ErrorCount)
}
