package ports

import (
	"errors"
	"time"

	"github.com/fr0stylo/feedbackgate/internal/app/domain"
)

// ErrNotFound is returned by stores when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Company is the tenant owning endpoints, customers and appointments.
type Company struct {
	ID                    int64
	Name                  string
	FeedbackEmailTemplate string
	FeedbackEmailSubject  string
}

// Endpoint is one tenant's inbound webhook configuration for a provider.
type Endpoint struct {
	ID        int64
	CompanyID int64
	Provider  string
	URL       string
	Secret    string
	domain.EndpointHealth
}

// Integration holds the provider credentials a tenant configured.
type Integration struct {
	CompanyID   int64
	Provider    string
	Credentials map[string]string
}

// Customer is a tenant-scoped customer identified by email.
type Customer struct {
	ID        int64
	CompanyID int64
	Name      string
	Email     string
}

// Appointment is the record created from a processed appointment event.
type Appointment struct {
	ID            string
	CompanyID     int64
	CustomerID    int64
	CustomerName  string
	CustomerEmail string
	AppointmentAt time.Time
	FeedbackSent  bool
}

// CreateAppointmentInput contains the fields needed to upsert the customer
// and create the appointment.
type CreateAppointmentInput struct {
	ID            string
	CompanyID     int64
	CustomerName  string
	CustomerEmail string
	AppointmentAt time.Time
}

// AuditRecordInput is one append request for the webhook audit log.
type AuditRecordInput struct {
	EndpointID   int64
	EventType    string
	RawPayload   string
	Processed    bool
	ProcessedAt  *time.Time
	ErrorMessage string
}

// AuditRecord is one stored webhook audit log entry.
type AuditRecord struct {
	ID           int64
	EndpointID   int64
	EventType    string
	RawPayload   string
	Processed    bool
	ProcessedAt  *time.Time
	ErrorMessage string
	CreatedAt    time.Time
}
