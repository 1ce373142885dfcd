package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fr0stylo/feedbackgate/internal/app/domain"
	"github.com/fr0stylo/feedbackgate/internal/app/ports"
	"github.com/fr0stylo/feedbackgate/internal/db"
	"github.com/fr0stylo/feedbackgate/internal/db/queries"
)

// Store implements the gateway ports over the shared sqlite database.
type Store struct {
	database storeDatabase
}

// NewStore wraps an open database. The caller owns the database lifecycle.
func NewStore(database storeDatabase) *Store {
	return &Store{database: database}
}

var (
	_ ports.EndpointStore    = (*Store)(nil)
	_ ports.AppointmentStore = (*Store)(nil)
)

// FindEndpoint returns the first live endpoint for provider whose URL contains path.
func (s *Store) FindEndpoint(ctx context.Context, provider, path string) (ports.Endpoint, error) {
	if path == "" {
		return ports.Endpoint{}, ports.ErrNotFound
	}
	row, err := s.database.FindEndpointByProviderPath(ctx, queries.FindEndpointByProviderPathParams{
		Provider: provider,
		Path:     path,
	})
	if err != nil {
		return ports.Endpoint{}, mapNotFound(err)
	}
	return mapEndpoint(row)
}

// GetEndpointByID returns a live endpoint by id.
func (s *Store) GetEndpointByID(ctx context.Context, id int64) (ports.Endpoint, error) {
	row, err := s.database.GetEndpointByID(ctx, id)
	if err != nil {
		return ports.Endpoint{}, mapNotFound(err)
	}
	return mapEndpoint(row)
}

// GetIntegration returns the provider credentials configured by a tenant.
func (s *Store) GetIntegration(ctx context.Context, companyID int64, provider string) (ports.Integration, error) {
	row, err := s.database.GetIntegration(ctx, queries.GetIntegrationParams{CompanyID: companyID, Provider: provider})
	if err != nil {
		return ports.Integration{}, mapNotFound(err)
	}
	credentials, err := decodeCredentials(row.Credentials)
	if err != nil {
		return ports.Integration{}, fmt.Errorf("integration %d: %w", row.ID, err)
	}
	return ports.Integration{
		CompanyID:   row.CompanyID,
		Provider:    row.Provider,
		Credentials: credentials,
	}, nil
}

// RecordEndpointSuccess stores the health after a processed delivery. The
// error count is reset in SQL.
func (s *Store) RecordEndpointSuccess(ctx context.Context, endpointID int64, health domain.EndpointHealth) error {
	return s.database.MarkEndpointSucceeded(ctx, queries.MarkEndpointSucceededParams{
		Status:      string(health.Status),
		LastEventAt: db.NullTimestamp(health.LastEventAt),
		ID:          endpointID,
	})
}

// RecordEndpointFailure increments the error count in place, so concurrent
// failures are all counted, and returns the stored health.
func (s *Store) RecordEndpointFailure(ctx context.Context, endpointID int64, status domain.EndpointStatus) (domain.EndpointHealth, error) {
	row, err := s.database.MarkEndpointFailed(ctx, queries.MarkEndpointFailedParams{
		Status: string(status),
		ID:     endpointID,
	})
	if err != nil {
		return domain.EndpointHealth{}, mapNotFound(err)
	}
	lastEventAt, err := parseNullTimestamp(row.LastEventAt)
	if err != nil {
		return domain.EndpointHealth{}, fmt.Errorf("endpoint %d last_event_at: %w", endpointID, err)
	}
	return domain.EndpointHealth{
		Status:      domain.ParseEndpointStatus(row.Status),
		ErrorCount:  row.ErrorCount,
		LastEventAt: lastEventAt,
	}, nil
}

// ListAuditRecords returns the newest audit records of an endpoint first.
func (s *Store) ListAuditRecords(ctx context.Context, endpointID int64, limit int64) ([]ports.AuditRecord, error) {
	rows, err := s.database.ListWebhookEventsByEndpoint(ctx, queries.ListWebhookEventsByEndpointParams{
		EndpointID: endpointID,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}
	records := make([]ports.AuditRecord, 0, len(rows))
	for _, row := range rows {
		record, err := mapAuditRecord(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ports.ErrNotFound
	}
	return err
}

func mapEndpoint(row queries.WebhookEndpoint) (ports.Endpoint, error) {
	lastEventAt, err := parseNullTimestamp(row.LastEventAt)
	if err != nil {
		return ports.Endpoint{}, fmt.Errorf("endpoint %d last_event_at: %w", row.ID, err)
	}
	return ports.Endpoint{
		ID:        row.ID,
		CompanyID: row.CompanyID,
		Provider:  row.Provider,
		URL:       row.Url,
		Secret:    row.Secret,
		EndpointHealth: domain.EndpointHealth{
			Status:      domain.ParseEndpointStatus(row.Status),
			ErrorCount:  row.ErrorCount,
			LastEventAt: lastEventAt,
		},
	}, nil
}

func mapAuditRecord(row queries.WebhookEvent) (ports.AuditRecord, error) {
	processedAt, err := parseNullTimestamp(row.ProcessedAt)
	if err != nil {
		return ports.AuditRecord{}, fmt.Errorf("webhook event %d processed_at: %w", row.ID, err)
	}
	createdAt, err := db.ParseTimestamp(row.CreatedAt)
	if err != nil {
		return ports.AuditRecord{}, fmt.Errorf("webhook event %d created_at: %w", row.ID, err)
	}
	return ports.AuditRecord{
		ID:           row.ID,
		EndpointID:   row.EndpointID,
		EventType:    row.EventType,
		RawPayload:   row.Payload,
		Processed:    row.Processed != 0,
		ProcessedAt:  processedAt,
		ErrorMessage: row.ErrorMessage.String,
		CreatedAt:    createdAt,
	}, nil
}

func parseNullTimestamp(value sql.NullString) (*time.Time, error) {
	if !value.Valid || value.String == "" {
		return nil, nil
	}
	at, err := db.ParseTimestamp(value.String)
	if err != nil {
		return nil, err
	}
	return &at, nil
}

// decodeCredentials keeps the string-valued fields of the stored JSON object.
func decodeCredentials(raw string) (map[string]string, error) {
	if raw == "" {
		return map[string]string{}, nil
	}
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("decode credentials: %w", err)
	}
	out := make(map[string]string, len(fields))
	for key, value := range fields {
		if text, ok := value.(string); ok {
			out[key] = text
		}
	}
	return out, nil
}
