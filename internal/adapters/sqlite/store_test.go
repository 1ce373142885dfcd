package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/fr0stylo/feedbackgate/internal/app/domain"
	"github.com/fr0stylo/feedbackgate/internal/app/ports"
	"github.com/fr0stylo/feedbackgate/internal/db"
)

func newTestDatabase(t *testing.T) *db.Database {
	t.Helper()

	database, err := db.New(filepath.Join(t.TempDir(), "gateway"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestFindEndpointMatchesProviderAndPath(t *testing.T) {
	ctx := context.Background()
	database := newTestDatabase(t)
	store := NewStore(database)

	company, err := database.CreateCompany(ctx, "Acme Dental", "", "")
	if err != nil {
		t.Fatalf("create company: %v", err)
	}
	endpoint, err := database.CreateEndpoint(ctx, company.ID, "generic", "https://feedback.example.com/webhooks/generic/acme-123", "secret")
	if err != nil {
		t.Fatalf("create endpoint: %v", err)
	}
	if _, err := database.CreateEndpoint(ctx, company.ID, "square", "https://feedback.example.com/webhooks/square/acme-123", ""); err != nil {
		t.Fatalf("create square endpoint: %v", err)
	}

	found, err := store.FindEndpoint(ctx, "generic", "/webhooks/generic/acme-123")
	if err != nil {
		t.Fatalf("find endpoint: %v", err)
	}
	if found.ID != endpoint.ID || found.CompanyID != company.ID || found.Secret != "secret" {
		t.Fatalf("unexpected endpoint: %+v", found)
	}
	if found.Status != domain.EndpointStatusActive || found.ErrorCount != 0 || found.LastEventAt != nil {
		t.Fatalf("unexpected initial health: %+v", found.EndpointHealth)
	}

	if _, err := store.FindEndpoint(ctx, "calendly", "/webhooks/generic/acme-123"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected not found for other provider, got %v", err)
	}
	if _, err := store.FindEndpoint(ctx, "generic", "/webhooks/generic/other"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected not found for unknown path, got %v", err)
	}
	if _, err := store.FindEndpoint(ctx, "generic", ""); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected not found for empty path, got %v", err)
	}
}

func TestFindEndpointSkipsSoftDeletedEndpoints(t *testing.T) {
	ctx := context.Background()
	database := newTestDatabase(t)
	store := NewStore(database)

	company, err := database.CreateCompany(ctx, "Acme", "", "")
	if err != nil {
		t.Fatalf("create company: %v", err)
	}
	endpoint, err := database.CreateEndpoint(ctx, company.ID, "acuity", "https://x.test/webhooks/acuity/acme", "")
	if err != nil {
		t.Fatalf("create endpoint: %v", err)
	}
	if err := database.SoftDeleteEndpoint(ctx, endpoint.ID, time.Now()); err != nil {
		t.Fatalf("soft delete endpoint: %v", err)
	}

	if _, err := store.FindEndpoint(ctx, "acuity", "/webhooks/acuity/acme"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected deleted endpoint to be hidden, got %v", err)
	}
	if _, err := store.GetEndpointByID(ctx, endpoint.ID); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected deleted endpoint to be hidden by id, got %v", err)
	}
}

func TestEndpointHealthTransitions(t *testing.T) {
	ctx := context.Background()
	database := newTestDatabase(t)
	store := NewStore(database)

	company, _ := database.CreateCompany(ctx, "Acme", "", "")
	endpoint, err := database.CreateEndpoint(ctx, company.ID, "generic", "https://x.test/webhooks/generic/acme", "s")
	if err != nil {
		t.Fatalf("create endpoint: %v", err)
	}

	at := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	if err := store.RecordEndpointSuccess(ctx, endpoint.ID, domain.OnSuccess(domain.EndpointHealth{}, at)); err != nil {
		t.Fatalf("record success: %v", err)
	}
	for i := 1; i <= 3; i++ {
		health, err := store.RecordEndpointFailure(ctx, endpoint.ID, domain.EndpointStatusError)
		if err != nil {
			t.Fatalf("record failure %d: %v", i, err)
		}
		if health.ErrorCount != int64(i) || health.Status != domain.EndpointStatusError {
			t.Fatalf("failure %d: unexpected health %+v", i, health)
		}
	}

	loaded, err := store.GetEndpointByID(ctx, endpoint.ID)
	if err != nil {
		t.Fatalf("get endpoint: %v", err)
	}
	if loaded.Status != domain.EndpointStatusError || loaded.ErrorCount != 3 {
		t.Fatalf("unexpected health: %+v", loaded.EndpointHealth)
	}
	if loaded.LastEventAt == nil || !loaded.LastEventAt.Equal(at) {
		t.Fatalf("failures must not move last event time: %v", loaded.LastEventAt)
	}

	later := at.Add(time.Hour)
	if err := store.RecordEndpointSuccess(ctx, endpoint.ID, domain.OnSuccess(loaded.EndpointHealth, later)); err != nil {
		t.Fatalf("record success: %v", err)
	}
	loaded, _ = store.GetEndpointByID(ctx, endpoint.ID)
	if loaded.Status != domain.EndpointStatusActive || loaded.ErrorCount != 0 || !loaded.LastEventAt.Equal(later) {
		t.Fatalf("unexpected health after recovery: %+v", loaded.EndpointHealth)
	}
}

func TestRecordEndpointFailureUnknownEndpoint(t *testing.T) {
	store := NewStore(newTestDatabase(t))
	if _, err := store.RecordEndpointFailure(context.Background(), 999, domain.EndpointStatusError); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFindEndpointPrefersExactPathSuffix(t *testing.T) {
	ctx := context.Background()
	database := newTestDatabase(t)
	store := NewStore(database)

	other, _ := database.CreateCompany(ctx, "Other", "", "")
	acme, _ := database.CreateCompany(ctx, "Acme", "", "")
	if _, err := database.CreateEndpoint(ctx, other.ID, "generic", "https://x.test/webhooks/generic/acme-1234", "other"); err != nil {
		t.Fatalf("create other endpoint: %v", err)
	}
	want, err := database.CreateEndpoint(ctx, acme.ID, "generic", "https://x.test/webhooks/generic/acme-123", "acme")
	if err != nil {
		t.Fatalf("create acme endpoint: %v", err)
	}

	found, err := store.FindEndpoint(ctx, "generic", "/webhooks/generic/acme-123")
	if err != nil {
		t.Fatalf("find endpoint: %v", err)
	}
	if found.ID != want.ID || found.CompanyID != acme.ID {
		t.Fatalf("expected exact suffix match %d, got %+v", want.ID, found)
	}
}

func TestGetIntegrationDecodesCredentials(t *testing.T) {
	ctx := context.Background()
	database := newTestDatabase(t)
	store := NewStore(database)

	company, _ := database.CreateCompany(ctx, "Acme", "", "")
	if _, err := database.UpsertIntegration(ctx, company.ID, "calendly", `{"webhook_signing_key":"key-1","retries":3}`); err != nil {
		t.Fatalf("upsert integration: %v", err)
	}

	integration, err := store.GetIntegration(ctx, company.ID, "calendly")
	if err != nil {
		t.Fatalf("get integration: %v", err)
	}
	if integration.Credentials["webhook_signing_key"] != "key-1" {
		t.Fatalf("unexpected credentials: %#v", integration.Credentials)
	}
	if _, ok := integration.Credentials["retries"]; ok {
		t.Fatalf("expected non-string credential dropped: %#v", integration.Credentials)
	}

	if _, err := store.GetIntegration(ctx, company.ID, "square"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected not found for missing integration, got %v", err)
	}
}

func TestCreateAppointmentUpsertsCustomerFirstWriteWins(t *testing.T) {
	ctx := context.Background()
	database := newTestDatabase(t)
	store := NewStore(database)

	company, _ := database.CreateCompany(ctx, "Acme", "", "")
	at := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	first, err := store.CreateAppointment(ctx, ports.CreateAppointmentInput{
		ID:            "appt-1",
		CompanyID:     company.ID,
		CustomerName:  "John Doe",
		CustomerEmail: "x@y.com",
		AppointmentAt: at,
	})
	if err != nil {
		t.Fatalf("create first appointment: %v", err)
	}
	second, err := store.CreateAppointment(ctx, ports.CreateAppointmentInput{
		ID:            "appt-2",
		CompanyID:     company.ID,
		CustomerName:  "Johnny D",
		CustomerEmail: "x@y.com",
		AppointmentAt: at.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("create second appointment: %v", err)
	}

	if first.CustomerID != second.CustomerID {
		t.Fatalf("expected shared customer, got %d and %d", first.CustomerID, second.CustomerID)
	}
	if !first.AppointmentAt.Equal(at) || first.FeedbackSent {
		t.Fatalf("unexpected appointment: %+v", first)
	}

	customers, err := database.ListCustomersByCompany(ctx, company.ID)
	if err != nil {
		t.Fatalf("list customers: %v", err)
	}
	if len(customers) != 1 {
		t.Fatalf("expected one customer, got %d", len(customers))
	}
	if customers[0].Name != "John Doe" {
		t.Fatalf("expected first name to win, got %q", customers[0].Name)
	}
}

func TestCreateAppointmentRollsBackCustomerOnFailure(t *testing.T) {
	ctx := context.Background()
	database := newTestDatabase(t)
	store := NewStore(database)

	company, _ := database.CreateCompany(ctx, "Acme", "", "")
	input := ports.CreateAppointmentInput{
		ID:            "dup",
		CompanyID:     company.ID,
		CustomerName:  "A",
		CustomerEmail: "a@b.com",
		AppointmentAt: time.Now(),
	}
	if _, err := store.CreateAppointment(ctx, input); err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	input.CustomerEmail = "other@b.com"
	if _, err := store.CreateAppointment(ctx, input); err == nil {
		t.Fatal("expected duplicate appointment id to fail")
	}

	customers, err := database.ListCustomersByCompany(ctx, company.ID)
	if err != nil {
		t.Fatalf("list customers: %v", err)
	}
	if len(customers) != 1 {
		t.Fatalf("expected customer insert rolled back, got %d customers", len(customers))
	}
}

func TestCompleteAppointmentMarksSentAndAppendsAudit(t *testing.T) {
	ctx := context.Background()
	database := newTestDatabase(t)
	store := NewStore(database)

	company, _ := database.CreateCompany(ctx, "Acme", "", "")
	endpoint, _ := database.CreateEndpoint(ctx, company.ID, "generic", "https://x.test/webhooks/generic/acme", "s")
	appointment, err := store.CreateAppointment(ctx, ports.CreateAppointmentInput{
		ID:            "appt-1",
		CompanyID:     company.ID,
		CustomerName:  "John Doe",
		CustomerEmail: "x@y.com",
		AppointmentAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	processedAt := time.Date(2025, 3, 10, 10, 5, 0, 0, time.UTC)
	err = store.CompleteAppointment(ctx, appointment.ID, ports.AuditRecordInput{
		EndpointID:  endpoint.ID,
		EventType:   "appointment.created",
		RawPayload:  `{"customerName":"John Doe"}`,
		Processed:   true,
		ProcessedAt: &processedAt,
	})
	if err != nil {
		t.Fatalf("complete appointment: %v", err)
	}

	stored, err := database.GetAppointmentByID(ctx, appointment.ID)
	if err != nil {
		t.Fatalf("get appointment: %v", err)
	}
	if stored.FeedbackSent != 1 {
		t.Fatal("expected feedback_sent to be set")
	}

	records, err := store.ListAuditRecords(ctx, endpoint.ID, 10)
	if err != nil {
		t.Fatalf("list audit records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one audit record, got %d", len(records))
	}
	record := records[0]
	if !record.Processed || record.ProcessedAt == nil || !record.ProcessedAt.Equal(processedAt) {
		t.Fatalf("unexpected audit record: %+v", record)
	}
	if record.ErrorMessage != "" || record.RawPayload != `{"customerName":"John Doe"}` {
		t.Fatalf("unexpected audit record: %+v", record)
	}
}

func TestCompleteAppointmentUnknownIDWritesNothing(t *testing.T) {
	ctx := context.Background()
	database := newTestDatabase(t)
	store := NewStore(database)

	company, _ := database.CreateCompany(ctx, "Acme", "", "")
	endpoint, _ := database.CreateEndpoint(ctx, company.ID, "generic", "https://x.test/webhooks/generic/acme", "s")

	err := store.CompleteAppointment(ctx, "missing", ports.AuditRecordInput{EndpointID: endpoint.ID, EventType: "appointment.created", Processed: true})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	records, err := store.ListAuditRecords(ctx, endpoint.ID, 10)
	if err != nil {
		t.Fatalf("list audit records: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no audit records, got %d", len(records))
	}
}

func TestAuditRecordsListNewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	database := newTestDatabase(t)
	store := NewStore(database)

	company, _ := database.CreateCompany(ctx, "Acme", "", "")
	endpoint, _ := database.CreateEndpoint(ctx, company.ID, "generic", "https://x.test/webhooks/generic/acme", "s")

	for _, message := range []string{"first", "second", "third"} {
		if err := store.AppendAuditRecord(ctx, ports.AuditRecordInput{
			EndpointID:   endpoint.ID,
			EventType:    "appointment.created",
			RawPayload:   "{}",
			ErrorMessage: message,
		}); err != nil {
			t.Fatalf("append audit record: %v", err)
		}
	}

	records, err := store.ListAuditRecords(ctx, endpoint.ID, 2)
	if err != nil {
		t.Fatalf("list audit records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ErrorMessage != "third" || records[1].ErrorMessage != "second" {
		t.Fatalf("unexpected order: %q, %q", records[0].ErrorMessage, records[1].ErrorMessage)
	}
	if records[0].Processed || records[0].ProcessedAt != nil {
		t.Fatalf("expected unprocessed record: %+v", records[0])
	}
}

func TestGetCompanyByIDMapsNullableTemplate(t *testing.T) {
	ctx := context.Background()
	database := newTestDatabase(t)
	store := NewStore(database)

	company, err := database.CreateCompany(ctx, "Acme", "", "How did we do?")
	if err != nil {
		t.Fatalf("create company: %v", err)
	}

	loaded, err := store.GetCompanyByID(ctx, company.ID)
	if err != nil {
		t.Fatalf("get company: %v", err)
	}
	if loaded.FeedbackEmailTemplate != "" || loaded.FeedbackEmailSubject != "How did we do?" {
		t.Fatalf("unexpected company: %+v", loaded)
	}

	if err := database.DeleteCompany(ctx, company.ID); err != nil {
		t.Fatalf("delete company: %v", err)
	}
	if _, err := store.GetCompanyByID(ctx, company.ID); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
