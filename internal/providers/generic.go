package providers

import (
	"encoding/json"
	"errors"
	"fmt"

	ceevent "github.com/cloudevents/sdk-go/v2/event"

	"github.com/fr0stylo/feedbackgate/internal/app/domain"
)

// Generic is the provider-neutral integration tenants wire from their own
// tooling. It signs with the endpoint secret.
type Generic struct{}

// NewGeneric constructs the generic provider.
func NewGeneric() Generic { return Generic{} }

func (Generic) Name() string            { return "generic" }
func (Generic) SignatureHeader() string { return GenericSignatureHeader }
func (Generic) EventType() string       { return "appointment.created" }

func (Generic) Credential() Credential {
	return Credential{Source: CredentialEndpointSecret}
}

func (Generic) Sign(secret string, body []byte) string {
	return SignHex(secret, body)
}

func (Generic) Verify(secret string, body []byte, signature string) bool {
	return VerifyHex(secret, body, signature)
}

// Normalize accepts the bare payload or the same payload carried as the data
// of a structured-mode CloudEvent.
func (g Generic) Normalize(body []byte) (domain.AppointmentEvent, bool, error) {
	payload, err := unwrapCloudEvent(body)
	if err != nil {
		return domain.AppointmentEvent{}, false, err
	}

	var in struct {
		CustomerName    string `json:"customerName"`
		CustomerEmail   string `json:"customerEmail"`
		AppointmentDate string `json:"appointmentDate"`
	}
	if err := decodePayload(payload, &in); err != nil {
		return domain.AppointmentEvent{}, false, err
	}

	event, err := buildEvent(g.Name(), g.EventType(), appointmentFields{
		Name:      in.CustomerName,
		Email:     in.CustomerEmail,
		StartTime: in.AppointmentDate,
	})
	if err != nil {
		return domain.AppointmentEvent{}, false, err
	}
	return event, true, nil
}

func unwrapCloudEvent(body []byte) ([]byte, error) {
	var probe struct {
		SpecVersion string `json:"specversion"`
	}
	if err := decodePayload(body, &probe); err != nil {
		return nil, err
	}
	if probe.SpecVersion == "" {
		return body, nil
	}

	event := ceevent.New()
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: cloud event: %v", ErrInvalidPayload, err)
	}
	if err := event.Validate(); err != nil {
		return nil, fmt.Errorf("%w: cloud event: %v", ErrInvalidPayload, err)
	}

	raw := json.RawMessage{}
	if err := event.DataAs(&raw); err != nil {
		return nil, fmt.Errorf("%w: cloud event data: %v", ErrInvalidPayload, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, errors.New("cloud event data is empty"))
	}
	return raw, nil
}
