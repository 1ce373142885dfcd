package providers

import "github.com/fr0stylo/feedbackgate/internal/app/domain"

// Acuity signs with the integration API key using the shared hex scheme.
type Acuity struct{}

// NewAcuity constructs the Acuity provider.
func NewAcuity() Acuity { return Acuity{} }

func (Acuity) Name() string            { return "acuity" }
func (Acuity) SignatureHeader() string { return GenericSignatureHeader }
func (Acuity) EventType() string       { return "acuity.appointment.completed" }

func (Acuity) Credential() Credential {
	return Credential{Source: CredentialIntegration, Field: "api_key"}
}

func (Acuity) Sign(secret string, body []byte) string {
	return SignHex(secret, body)
}

func (Acuity) Verify(secret string, body []byte, signature string) bool {
	return VerifyHex(secret, body, signature)
}

func (a Acuity) Normalize(body []byte) (domain.AppointmentEvent, bool, error) {
	var in struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Datetime  string `json:"datetime"`
	}
	if err := decodePayload(body, &in); err != nil {
		return domain.AppointmentEvent{}, false, err
	}

	event, err := buildEvent(a.Name(), a.EventType(), appointmentFields{
		Name:      joinName(in.FirstName, in.LastName),
		Email:     in.Email,
		StartTime: in.Datetime,
	})
	if err != nil {
		return domain.AppointmentEvent{}, false, err
	}
	return event, true, nil
}
