package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/fr0stylo/feedbackgate/internal/db/queries"
)

// TimestampLayout is the text layout for every timestamp column.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z"

// FormatTimestamp renders t as a sortable UTC timestamp column value.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a timestamp column written by FormatTimestamp or by a
// column default.
func ParseTimestamp(raw string) (time.Time, error) {
	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, err
	}
	return at.UTC(), nil
}

// NullTimestamp converts an optional instant into a nullable column value.
func NullTimestamp(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: FormatTimestamp(*t), Valid: true}
}

// NullString stores empty strings as NULL.
func NullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}

// CreateCompany inserts a tenant. Empty template and subject are stored as NULL.
func (c *Database) CreateCompany(ctx context.Context, name, template, subject string) (queries.Company, error) {
	return c.Queries.CreateCompany(ctx, queries.CreateCompanyParams{
		Name:                  name,
		FeedbackEmailTemplate: NullString(template),
		FeedbackEmailSubject:  NullString(subject),
	})
}

// CreateEndpoint registers a tenant webhook endpoint for a provider.
func (c *Database) CreateEndpoint(ctx context.Context, companyID int64, provider, url, secret string) (queries.WebhookEndpoint, error) {
	return c.Queries.CreateEndpoint(ctx, queries.CreateEndpointParams{
		CompanyID: companyID,
		Provider:  provider,
		Url:       url,
		Secret:    secret,
	})
}

// SoftDeleteEndpoint retires an endpoint while keeping its audit trail.
func (c *Database) SoftDeleteEndpoint(ctx context.Context, endpointID int64, at time.Time) error {
	return c.Queries.SoftDeleteEndpoint(ctx, queries.SoftDeleteEndpointParams{
		DeletedAt: NullTimestamp(&at),
		ID:        endpointID,
	})
}

// UpsertIntegration stores provider credentials encoded as a JSON object.
func (c *Database) UpsertIntegration(ctx context.Context, companyID int64, provider, credentialsJSON string) (queries.Integration, error) {
	return c.Queries.UpsertIntegration(ctx, queries.UpsertIntegrationParams{
		CompanyID:   companyID,
		Provider:    provider,
		Credentials: credentialsJSON,
	})
}

// WithTx runs a function within a transaction.
func (c *Database) WithTx(ctx context.Context, fn func(*queries.Queries) error) error {
	tx, err := c.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	if err := fn(c.Queries.WithTx(tx)); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}
	return tx.Commit()
}
