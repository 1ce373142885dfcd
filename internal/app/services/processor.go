package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fr0stylo/feedbackgate/internal/app/domain"
	"github.com/fr0stylo/feedbackgate/internal/app/ports"
)

// ProcessCommand is one normalized event to process for a tenant endpoint.
type ProcessCommand struct {
	CompanyID  int64
	EndpointID int64
	Event      domain.AppointmentEvent
	RawPayload []byte
}

// EventProcessor turns appointment events into appointments and feedback
// requests. Every call writes exactly one audit record.
type EventProcessor struct {
	store     ports.AppointmentStore
	notifier  ports.Notifier
	publicURL string
	log       *slog.Logger
	now       func() time.Time
	newID     func() string
}

// ProcessorOption customizes an EventProcessor.
type ProcessorOption func(*EventProcessor)

// WithProcessorClock overrides the processed-at clock.
func WithProcessorClock(now func() time.Time) ProcessorOption {
	return func(p *EventProcessor) { p.now = now }
}

// WithAppointmentIDs overrides appointment id generation.
func WithAppointmentIDs(newID func() string) ProcessorOption {
	return func(p *EventProcessor) { p.newID = newID }
}

// NewEventProcessor constructs a processor. publicURL prefixes feedback links.
func NewEventProcessor(store ports.AppointmentStore, notifier ports.Notifier, publicURL string, log *slog.Logger, opts ...ProcessorOption) *EventProcessor {
	if log == nil {
		log = slog.Default()
	}
	p := &EventProcessor{
		store:     store,
		notifier:  notifier,
		publicURL: publicURL,
		log:       log,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process creates the appointment, sends the feedback request and records the
// outcome. Failures are audited with processed=false and returned wrapped in
// ErrWebhookProcessingFailed.
func (p *EventProcessor) Process(ctx context.Context, cmd ProcessCommand) (ports.Appointment, error) {
	appointment, err := p.process(ctx, cmd)
	if err == nil {
		return appointment, nil
	}

	failure := fmt.Errorf("%w: %w", ErrWebhookProcessingFailed, err)
	if auditErr := p.RecordFailure(ctx, cmd.EndpointID, cmd.Event.EventType, cmd.RawPayload, err); auditErr != nil {
		return ports.Appointment{}, errors.Join(failure, auditErr)
	}
	return ports.Appointment{}, failure
}

// RecordFailure appends a processed=false audit record carrying cause's
// message. It survives cancellation of ctx.
func (p *EventProcessor) RecordFailure(ctx context.Context, endpointID int64, eventType string, raw []byte, cause error) error {
	message := "unknown error"
	if cause != nil {
		message = cause.Error()
	}
	err := p.store.AppendAuditRecord(context.WithoutCancel(ctx), ports.AuditRecordInput{
		EndpointID:   endpointID,
		EventType:    eventType,
		RawPayload:   string(raw),
		Processed:    false,
		ErrorMessage: message,
	})
	if err != nil {
		p.log.ErrorContext(ctx, "Failed to write webhook audit record", "error", err, "cause", message)
		return fmt.Errorf("%w: write audit record: %w", ErrWebhookProcessingFailed, err)
	}
	return nil
}

func (p *EventProcessor) process(ctx context.Context, cmd ProcessCommand) (ports.Appointment, error) {
	company, err := p.store.GetCompanyByID(ctx, cmd.CompanyID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ports.Appointment{}, ErrCompanyNotFound
		}
		return ports.Appointment{}, fmt.Errorf("load company: %w", err)
	}

	appointment, err := p.store.CreateAppointment(ctx, ports.CreateAppointmentInput{
		ID:            p.newID(),
		CompanyID:     company.ID,
		CustomerName:  cmd.Event.CustomerName,
		CustomerEmail: cmd.Event.CustomerEmail,
		AppointmentAt: cmd.Event.AppointmentAt,
	})
	if err != nil {
		return ports.Appointment{}, fmt.Errorf("create appointment: %w", err)
	}

	err = p.notifier.SendFeedbackRequest(ctx, ports.FeedbackRequest{
		RecipientEmail: appointment.CustomerEmail,
		CustomerName:   appointment.CustomerName,
		CompanyName:    company.Name,
		AppointmentID:  appointment.ID,
		FeedbackURL:    FeedbackURL(p.publicURL, appointment.ID),
		Template:       company.FeedbackEmailTemplate,
		Subject:        company.FeedbackEmailSubject,
	})
	if err != nil {
		return ports.Appointment{}, fmt.Errorf("send feedback request: %w", err)
	}

	processedAt := p.now().UTC()
	err = p.store.CompleteAppointment(ctx, appointment.ID, ports.AuditRecordInput{
		EndpointID:  cmd.EndpointID,
		EventType:   cmd.Event.EventType,
		RawPayload:  string(cmd.RawPayload),
		Processed:   true,
		ProcessedAt: &processedAt,
	})
	if err != nil {
		return ports.Appointment{}, fmt.Errorf("complete appointment: %w", err)
	}

	appointment.FeedbackSent = true
	return appointment, nil
}

// FeedbackURL is the public link a customer follows to leave feedback.
func FeedbackURL(publicURL, appointmentID string) string {
	return publicURL + "/feedback/" + appointmentID
}
