package sqlite

import (
	"context"
	"fmt"

	"github.com/fr0stylo/feedbackgate/internal/app/ports"
	"github.com/fr0stylo/feedbackgate/internal/db"
	"github.com/fr0stylo/feedbackgate/internal/db/queries"
)

// GetCompanyByID returns the tenant with id.
func (s *Store) GetCompanyByID(ctx context.Context, id int64) (ports.Company, error) {
	row, err := s.database.GetCompanyByID(ctx, id)
	if err != nil {
		return ports.Company{}, mapNotFound(err)
	}
	return ports.Company{
		ID:                    row.ID,
		Name:                  row.Name,
		FeedbackEmailTemplate: row.FeedbackEmailTemplate.String,
		FeedbackEmailSubject:  row.FeedbackEmailSubject.String,
	}, nil
}

// CreateAppointment upserts the customer by (company, email) and creates the
// appointment in one transaction. An existing customer keeps its name.
func (s *Store) CreateAppointment(ctx context.Context, input ports.CreateAppointmentInput) (ports.Appointment, error) {
	var created queries.Appointment
	err := s.database.WithTx(ctx, func(q *queries.Queries) error {
		customer, err := q.UpsertCustomer(ctx, queries.UpsertCustomerParams{
			CompanyID: input.CompanyID,
			Name:      input.CustomerName,
			Email:     input.CustomerEmail,
		})
		if err != nil {
			return fmt.Errorf("upsert customer: %w", err)
		}

		created, err = q.CreateAppointment(ctx, queries.CreateAppointmentParams{
			ID:            input.ID,
			CompanyID:     input.CompanyID,
			CustomerID:    customer.ID,
			CustomerName:  input.CustomerName,
			CustomerEmail: input.CustomerEmail,
			AppointmentAt: db.FormatTimestamp(input.AppointmentAt),
		})
		if err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		return ports.Appointment{}, err
	}
	return mapAppointment(created)
}

// CompleteAppointment marks feedback sent and appends the processed audit
// record in one transaction.
func (s *Store) CompleteAppointment(ctx context.Context, appointmentID string, audit ports.AuditRecordInput) error {
	return s.database.WithTx(ctx, func(q *queries.Queries) error {
		updated, err := q.MarkAppointmentFeedbackSent(ctx, appointmentID)
		if err != nil {
			return fmt.Errorf("mark feedback sent: %w", err)
		}
		if updated == 0 {
			return fmt.Errorf("mark feedback sent: appointment %s: %w", appointmentID, ports.ErrNotFound)
		}
		if err := q.AppendWebhookEvent(ctx, auditParams(audit)); err != nil {
			return fmt.Errorf("append audit record: %w", err)
		}
		return nil
	})
}

// AppendAuditRecord appends one audit record outside any transaction.
func (s *Store) AppendAuditRecord(ctx context.Context, audit ports.AuditRecordInput) error {
	return s.database.AppendWebhookEvent(ctx, auditParams(audit))
}

func auditParams(audit ports.AuditRecordInput) queries.AppendWebhookEventParams {
	processed := int64(0)
	if audit.Processed {
		processed = 1
	}
	return queries.AppendWebhookEventParams{
		EndpointID:   audit.EndpointID,
		EventType:    audit.EventType,
		Payload:      audit.RawPayload,
		Processed:    processed,
		ProcessedAt:  db.NullTimestamp(audit.ProcessedAt),
		ErrorMessage: db.NullString(audit.ErrorMessage),
	}
}

func mapAppointment(row queries.Appointment) (ports.Appointment, error) {
	at, err := db.ParseTimestamp(row.AppointmentAt)
	if err != nil {
		return ports.Appointment{}, fmt.Errorf("appointment %s appointment_at: %w", row.ID, err)
	}
	return ports.Appointment{
		ID:            row.ID,
		CompanyID:     row.CompanyID,
		CustomerID:    row.CustomerID,
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		AppointmentAt: at,
		FeedbackSent:  row.FeedbackSent != 0,
	}, nil
}
