package providers

import (
	"encoding/json"
	"time"
)

const (
	sampleCustomerFirst = "Test"
	sampleCustomerLast  = "Customer"
	sampleCustomerEmail = "test.customer@example.com"
)

// SamplePayload returns a synthetic delivery for the named provider that
// normalizes to an appointment at the given instant. It is used by the
// operator test hook when no payload is supplied.
func SamplePayload(provider string, at time.Time) ([]byte, bool) {
	start := at.UTC().Format(time.RFC3339)

	var payload any
	switch normalizeName(provider) {
	case "generic":
		payload = map[string]any{
			"customerName":    sampleCustomerFirst + " " + sampleCustomerLast,
			"customerEmail":   sampleCustomerEmail,
			"appointmentDate": start,
		}
	case "calendly":
		payload = map[string]any{
			"event": calendlyInviteeCreated,
			"payload": map[string]any{
				"status":          calendlyStatusCompleted,
				"first_name":      sampleCustomerFirst,
				"last_name":       sampleCustomerLast,
				"email":           sampleCustomerEmail,
				"scheduled_event": map[string]any{"start_time": start},
			},
		}
	case "square":
		payload = map[string]any{
			"type": squareBookingCompleted,
			"data": map[string]any{
				"object": map[string]any{
					"booking": map[string]any{
						"start_at": start,
						"customer": map[string]any{
							"given_name":    sampleCustomerFirst,
							"family_name":   sampleCustomerLast,
							"email_address": sampleCustomerEmail,
						},
					},
				},
			},
		}
	case "acuity":
		payload = map[string]any{
			"action":    "appointment.completed",
			"firstName": sampleCustomerFirst,
			"lastName":  sampleCustomerLast,
			"email":     sampleCustomerEmail,
			"datetime":  start,
		}
	case "setmore":
		payload = map[string]any{
			"start_time": start,
			"customer": map[string]any{
				"first_name": sampleCustomerFirst,
				"last_name":  sampleCustomerLast,
				"email_id":   sampleCustomerEmail,
			},
		}
	default:
		return nil, false
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, false
	}
	return body, true
}
