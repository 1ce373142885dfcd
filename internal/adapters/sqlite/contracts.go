package sqlite

import (
	"context"

	"github.com/fr0stylo/feedbackgate/internal/db/queries"
)

type storeDatabase interface {
	GetCompanyByID(ctx context.Context, id int64) (queries.Company, error)
	FindEndpointByProviderPath(ctx context.Context, arg queries.FindEndpointByProviderPathParams) (queries.WebhookEndpoint, error)
	GetEndpointByID(ctx context.Context, id int64) (queries.WebhookEndpoint, error)
	MarkEndpointSucceeded(ctx context.Context, arg queries.MarkEndpointSucceededParams) error
	MarkEndpointFailed(ctx context.Context, arg queries.MarkEndpointFailedParams) (queries.MarkEndpointFailedRow, error)
	GetIntegration(ctx context.Context, arg queries.GetIntegrationParams) (queries.Integration, error)
	AppendWebhookEvent(ctx context.Context, arg queries.AppendWebhookEventParams) error
	ListWebhookEventsByEndpoint(ctx context.Context, arg queries.ListWebhookEventsByEndpointParams) ([]queries.WebhookEvent, error)

	WithTx(ctx context.Context, fn func(*queries.Queries) error) error
}
