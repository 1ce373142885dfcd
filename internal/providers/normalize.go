package providers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/fr0stylo/feedbackgate/internal/app/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// timestampLayouts accept ISO-8601 instants with an explicit offset only.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.999999999-0700",
}

type appointmentFields struct {
	Name      string `validate:"required"`
	Email     string `validate:"required,email"`
	StartTime string `validate:"required"`
}

func buildEvent(provider, eventType string, fields appointmentFields) (domain.AppointmentEvent, error) {
	fields.Name = strings.TrimSpace(fields.Name)
	fields.Email = strings.TrimSpace(fields.Email)
	fields.StartTime = strings.TrimSpace(fields.StartTime)
	if err := validate.Struct(fields); err != nil {
		return domain.AppointmentEvent{}, fmt.Errorf("%w: %s", ErrInvalidPayload, describeValidation(err))
	}

	at, err := parseTimestamp(fields.StartTime)
	if err != nil {
		return domain.AppointmentEvent{}, err
	}

	return domain.AppointmentEvent{
		CustomerName:  fields.Name,
		CustomerEmail: fields.Email,
		AppointmentAt: at,
		Provider:      provider,
		EventType:     eventType,
	}, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if at, err := time.Parse(layout, raw); err == nil {
			return at.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparsable appointment time %q", ErrInvalidPayload, raw)
}

// joinName concatenates name parts with single spaces, dropping empty parts.
func joinName(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " ")
}

func decodePayload(body []byte, target any) error {
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}

func describeValidation(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, strings.ToLower(fieldErr.Field())+" "+fieldErr.Tag())
	}
	return strings.Join(fields, ", ")
}
