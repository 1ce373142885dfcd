package providers

import "github.com/fr0stylo/feedbackgate/internal/app/domain"

// Setmore signs with the integration API key using the shared hex scheme.
type Setmore struct{}

// NewSetmore constructs the Setmore provider.
func NewSetmore() Setmore { return Setmore{} }

func (Setmore) Name() string            { return "setmore" }
func (Setmore) SignatureHeader() string { return GenericSignatureHeader }
func (Setmore) EventType() string       { return "setmore.appointment.completed" }

func (Setmore) Credential() Credential {
	return Credential{Source: CredentialIntegration, Field: "api_key"}
}

func (Setmore) Sign(secret string, body []byte) string {
	return SignHex(secret, body)
}

func (Setmore) Verify(secret string, body []byte, signature string) bool {
	return VerifyHex(secret, body, signature)
}

func (s Setmore) Normalize(body []byte) (domain.AppointmentEvent, bool, error) {
	var in struct {
		StartTime string `json:"start_time"`
		Customer  struct {
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
			EmailID   string `json:"email_id"`
		} `json:"customer"`
	}
	if err := decodePayload(body, &in); err != nil {
		return domain.AppointmentEvent{}, false, err
	}

	event, err := buildEvent(s.Name(), s.EventType(), appointmentFields{
		Name:      joinName(in.Customer.FirstName, in.Customer.LastName),
		Email:     in.Customer.EmailID,
		StartTime: in.StartTime,
	})
	if err != nil {
		return domain.AppointmentEvent{}, false, err
	}
	return event, true, nil
}
