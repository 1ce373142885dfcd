package providers

import (
	"strings"

	"github.com/fr0stylo/feedbackgate/internal/app/domain"
)

const (
	// CalendlySignatureHeader carries the versioned base64 signature.
	CalendlySignatureHeader = "Calendly-Webhook-Signature"
	calendlySignaturePrefix = "v1="
	calendlyInviteeCreated  = "invitee.created"
	calendlyStatusCompleted = "completed"
)

// Calendly verifies v1-prefixed base64 signatures keyed by the integration's
// webhook signing key.
type Calendly struct{}

// NewCalendly constructs the Calendly provider.
func NewCalendly() Calendly { return Calendly{} }

func (Calendly) Name() string            { return "calendly" }
func (Calendly) SignatureHeader() string { return CalendlySignatureHeader }
func (Calendly) EventType() string       { return "calendly.invitee.created" }

func (Calendly) Credential() Credential {
	return Credential{Source: CredentialIntegration, Field: "webhook_signing_key"}
}

func (Calendly) Sign(secret string, body []byte) string {
	return SignBase64(secret, body, calendlySignaturePrefix)
}

func (Calendly) Verify(secret string, body []byte, signature string) bool {
	return VerifyBase64(secret, body, signature, calendlySignaturePrefix)
}

func (c Calendly) Normalize(body []byte) (domain.AppointmentEvent, bool, error) {
	var in struct {
		Event   string `json:"event"`
		Payload struct {
			Status         string `json:"status"`
			Name           string `json:"name"`
			FirstName      string `json:"first_name"`
			LastName       string `json:"last_name"`
			Email          string `json:"email"`
			ScheduledEvent struct {
				StartTime string `json:"start_time"`
			} `json:"scheduled_event"`
		} `json:"payload"`
	}
	if err := decodePayload(body, &in); err != nil {
		return domain.AppointmentEvent{}, false, err
	}
	if strings.TrimSpace(in.Event) != calendlyInviteeCreated {
		return domain.AppointmentEvent{}, false, nil
	}
	if !strings.EqualFold(strings.TrimSpace(in.Payload.Status), calendlyStatusCompleted) {
		return domain.AppointmentEvent{}, false, nil
	}

	name := joinName(in.Payload.FirstName, in.Payload.LastName)
	if name == "" {
		name = in.Payload.Name
	}
	event, err := buildEvent(c.Name(), c.EventType(), appointmentFields{
		Name:      name,
		Email:     in.Payload.Email,
		StartTime: in.Payload.ScheduledEvent.StartTime,
	})
	if err != nil {
		return domain.AppointmentEvent{}, false, err
	}
	return event, true, nil
}
