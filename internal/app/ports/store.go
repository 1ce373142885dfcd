package ports

import (
	"context"

	"github.com/fr0stylo/feedbackgate/internal/app/domain"
)

// EndpointStore reads endpoint routing data and persists endpoint health.
type EndpointStore interface {
	// FindEndpoint returns the first live endpoint for provider whose URL
	// contains path.
	FindEndpoint(ctx context.Context, provider, path string) (Endpoint, error)
	GetEndpointByID(ctx context.Context, id int64) (Endpoint, error)
	GetIntegration(ctx context.Context, companyID int64, provider string) (Integration, error)
	RecordEndpointSuccess(ctx context.Context, endpointID int64, health domain.EndpointHealth) error
	// RecordEndpointFailure sets status and adds one to the stored error
	// count atomically, returning the resulting health.
	RecordEndpointFailure(ctx context.Context, endpointID int64, status domain.EndpointStatus) (domain.EndpointHealth, error)
	ListAuditRecords(ctx context.Context, endpointID int64, limit int64) ([]AuditRecord, error)
}

// AppointmentStore covers the writes performed while processing an event.
type AppointmentStore interface {
	GetCompanyByID(ctx context.Context, id int64) (Company, error)
	// CreateAppointment upserts the customer and creates the appointment in
	// one transaction.
	CreateAppointment(ctx context.Context, input CreateAppointmentInput) (Appointment, error)
	// CompleteAppointment marks feedback sent and appends the audit record in
	// one transaction.
	CompleteAppointment(ctx context.Context, appointmentID string, audit AuditRecordInput) error
	AppendAuditRecord(ctx context.Context, audit AuditRecordInput) error
}
