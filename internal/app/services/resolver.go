package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fr0stylo/feedbackgate/internal/app/ports"
	"github.com/fr0stylo/feedbackgate/internal/providers"
)

// EndpointResolver maps an inbound request onto a tenant endpoint.
type EndpointResolver struct {
	registry *providers.Registry
	store    ports.EndpointStore
}

// NewEndpointResolver constructs a resolver over the provider registry.
func NewEndpointResolver(registry *providers.Registry, store ports.EndpointStore) *EndpointResolver {
	return &EndpointResolver{registry: registry, store: store}
}

// Resolve returns the provider and the first live endpoint for it whose
// configured URL contains requestPath.
func (r *EndpointResolver) Resolve(ctx context.Context, providerName, requestPath string) (providers.Provider, ports.Endpoint, error) {
	provider, ok := r.registry.Lookup(providerName)
	if !ok {
		return nil, ports.Endpoint{}, ErrInvalidProvider
	}

	requestPath = strings.TrimSpace(requestPath)
	if requestPath == "" {
		return nil, ports.Endpoint{}, ErrEndpointNotFound
	}

	endpoint, err := r.store.FindEndpoint(ctx, provider.Name(), requestPath)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ports.Endpoint{}, ErrEndpointNotFound
		}
		return nil, ports.Endpoint{}, fmt.Errorf("resolve endpoint: %w", err)
	}
	return provider, endpoint, nil
}

// Provider returns the registered provider for an endpoint loaded by id.
func (r *EndpointResolver) Provider(name string) (providers.Provider, error) {
	provider, ok := r.registry.Lookup(name)
	if !ok {
		return nil, ErrInvalidProvider
	}
	return provider, nil
}
