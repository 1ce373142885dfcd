package webhookclient

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	ceevent "github.com/cloudevents/sdk-go/v2/event"
	"github.com/google/uuid"
)

const defaultSource = "feedbackgate/webhookclient"

// BuildAppointmentBody encodes a generic-provider payload.
func BuildAppointmentBody(appointment Appointment) ([]byte, error) {
	name := strings.TrimSpace(appointment.CustomerName)
	email := strings.TrimSpace(appointment.CustomerEmail)
	if name == "" || email == "" || appointment.AppointmentAt.IsZero() {
		return nil, fmt.Errorf("customer name, email and appointment time are required")
	}

	data := map[string]string{
		"customerName":    name,
		"customerEmail":   email,
		"appointmentDate": appointment.AppointmentAt.UTC().Format(time.RFC3339),
	}
	if !appointment.CloudEvent {
		return json.Marshal(data)
	}

	source := strings.TrimSpace(appointment.Source)
	if source == "" {
		source = defaultSource
	}
	event := ceevent.New()
	event.SetID(uuid.NewString())
	event.SetSource(source)
	event.SetType("appointment.completed")
	event.SetTime(time.Now().UTC())
	if err := event.SetData(ceevent.ApplicationJSON, data); err != nil {
		return nil, fmt.Errorf("encode cloud event data: %w", err)
	}
	if err := event.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cloud event: %w", err)
	}
	return json.Marshal(event)
}
