package providers

import (
	"strings"

	"github.com/fr0stylo/feedbackgate/internal/app/domain"
)

const (
	// SquareSignatureHeader carries the bare base64 signature.
	SquareSignatureHeader = "X-Square-Hmacsha256-Signature"
	squareBookingCompleted = "booking.completed"
)

// Square verifies bare base64 signatures keyed by the integration's webhook
// signing key and only accepts completed bookings.
type Square struct{}

// NewSquare constructs the Square provider.
func NewSquare() Square { return Square{} }

func (Square) Name() string            { return "square" }
func (Square) SignatureHeader() string { return SquareSignatureHeader }
func (Square) EventType() string       { return "square.booking.completed" }

func (Square) Credential() Credential {
	return Credential{Source: CredentialIntegration, Field: "webhook_signing_key"}
}

func (Square) Sign(secret string, body []byte) string {
	return SignBase64(secret, body, "")
}

func (Square) Verify(secret string, body []byte, signature string) bool {
	return VerifyBase64(secret, body, signature, "")
}

func (s Square) Normalize(body []byte) (domain.AppointmentEvent, bool, error) {
	var in struct {
		Type string `json:"type"`
		Data struct {
			Object struct {
				Booking struct {
					StartAt  string `json:"start_at"`
					Customer struct {
						GivenName    string `json:"given_name"`
						FamilyName   string `json:"family_name"`
						EmailAddress string `json:"email_address"`
					} `json:"customer"`
				} `json:"booking"`
			} `json:"object"`
		} `json:"data"`
	}
	if err := decodePayload(body, &in); err != nil {
		return domain.AppointmentEvent{}, false, err
	}
	if strings.TrimSpace(in.Type) != squareBookingCompleted {
		return domain.AppointmentEvent{}, false, nil
	}

	booking := in.Data.Object.Booking
	event, err := buildEvent(s.Name(), s.EventType(), appointmentFields{
		Name:      joinName(booking.Customer.GivenName, booking.Customer.FamilyName),
		Email:     booking.Customer.EmailAddress,
		StartTime: booking.StartAt,
	})
	if err != nil {
		return domain.AppointmentEvent{}, false, err
	}
	return event, true, nil
}
