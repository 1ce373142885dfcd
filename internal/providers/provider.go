package providers

import (
	"errors"
	"sort"
	"strings"

	"github.com/fr0stylo/feedbackgate/internal/app/domain"
)

// GenericSignatureHeader is the signature header shared by most providers.
const GenericSignatureHeader = "X-Webhook-Signature"

// ErrInvalidPayload indicates a payload that cannot be normalized.
var ErrInvalidPayload = errors.New("invalid payload")

// CredentialSource tells the gateway where a provider's signing key lives.
type CredentialSource int

const (
	// CredentialEndpointSecret signs with the endpoint's own shared secret.
	CredentialEndpointSecret CredentialSource = iota
	// CredentialIntegration signs with a field of the tenant's integration credentials.
	CredentialIntegration
)

// Credential describes the signing key a provider expects.
type Credential struct {
	Source CredentialSource
	Field  string
}

// Provider is one scheduling provider: how its deliveries are signed and how
// its payloads map onto the canonical appointment event.
type Provider interface {
	Name() string
	SignatureHeader() string
	Credential() Credential
	EventType() string
	Sign(secret string, body []byte) string
	Verify(secret string, body []byte, signature string) bool
	// Normalize returns ok=false when the payload is a valid delivery that
	// does not describe a completed appointment.
	Normalize(body []byte) (event domain.AppointmentEvent, ok bool, err error)
}

// Registry maps provider names to implementations.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry constructs a registry of the given providers.
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.providers[normalizeName(p.Name())] = p
	}
	return r
}

// DefaultRegistry returns every supported provider.
func DefaultRegistry() *Registry {
	return NewRegistry(
		NewGeneric(),
		NewCalendly(),
		NewSquare(),
		NewAcuity(),
		NewSetmore(),
	)
}

// Lookup returns the provider registered under name.
func (r *Registry) Lookup(name string) (Provider, bool) {
	if r == nil {
		return nil, false
	}
	p, ok := r.providers[normalizeName(name)]
	return p, ok
}

// Names lists registered provider names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
