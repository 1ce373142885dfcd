package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/fr0stylo/feedbackgate/internal/app/ports"
	"github.com/fr0stylo/feedbackgate/internal/observability"
	"github.com/fr0stylo/feedbackgate/internal/providers"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ReplayCommand asks the gateway to push a synthetic delivery through an
// endpoint. A nil Payload uses the provider's sample payload.
type ReplayCommand struct {
	EndpointID int64 `validate:"gt=0"`
	Payload    []byte
}

// Replay signs the payload with a throwaway key, verifies it with the
// provider's verifier and runs the same pipeline as Dispatch. It must only be
// reachable by operators.
func (g *Gateway) Replay(ctx context.Context, cmd ReplayCommand) (DispatchResult, error) {
	if err := validate.Struct(cmd); err != nil {
		return DispatchResult{}, fmt.Errorf("%w: %w", ErrInvalidReplay, err)
	}

	ctx, span := observability.StartWebhookSpan(ctx, observability.StageReplay)
	defer span.End()

	endpoint, err := g.endpoints.GetEndpointByID(ctx, cmd.EndpointID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return DispatchResult{}, ErrEndpointNotFound
		}
		return DispatchResult{}, fmt.Errorf("load endpoint: %w", err)
	}

	provider, err := g.resolver.Provider(endpoint.Provider)
	if err != nil {
		return DispatchResult{}, err
	}
	ctx = observability.WithProvider(ctx, provider.Name())
	ctx = observability.WithEndpointIdentity(ctx, endpoint.CompanyID, endpoint.ID)

	payload := cmd.Payload
	if len(payload) == 0 {
		sample, ok := providers.SamplePayload(provider.Name(), g.now())
		if !ok {
			return DispatchResult{}, fmt.Errorf("%w: no sample payload for provider %s", ErrInvalidReplay, provider.Name())
		}
		payload = sample
	}

	key := uuid.NewString()
	if !provider.Verify(key, payload, provider.Sign(key, payload)) {
		return DispatchResult{}, ErrInvalidSignature
	}

	g.log.InfoContext(ctx, "Replaying synthetic webhook")
	return g.run(ctx, provider, endpoint, payload)
}
