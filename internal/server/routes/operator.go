package routes

import (
	"context"
	"crypto/subtle"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/fr0stylo/feedbackgate/internal/app/ports"
	"github.com/fr0stylo/feedbackgate/internal/app/services"
	"github.com/fr0stylo/feedbackgate/internal/webhooks"
)

const operatorAuditLimit = 50

// Replayer pushes synthetic deliveries through the gateway pipeline.
type Replayer interface {
	Replay(ctx context.Context, cmd services.ReplayCommand) (services.DispatchResult, error)
}

// OperatorRoutes registers the operator API. Nothing is registered when the
// token is empty.
type OperatorRoutes struct {
	token           string
	replayer        Replayer
	endpoints       ports.EndpointStore
	maxPayloadBytes int64
}

// NewOperatorRoutes constructs operator routes.
func NewOperatorRoutes(token string, replayer Replayer, endpoints ports.EndpointStore, maxPayloadBytes int64) *OperatorRoutes {
	if maxPayloadBytes <= 0 {
		maxPayloadBytes = webhooks.DefaultMaxPayloadBytes
	}
	return &OperatorRoutes{
		token:           token,
		replayer:        replayer,
		endpoints:       endpoints,
		maxPayloadBytes: maxPayloadBytes,
	}
}

// RegisterRoutes registers operator endpoints behind bearer authentication.
func (o *OperatorRoutes) RegisterRoutes(s *echo.Echo) {
	if o.token == "" {
		return
	}
	api := s.Group("/api/operator", middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup:  "header:" + echo.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(key string, _ echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), []byte(o.token)) == 1, nil
		},
	}))

	api.GET("/endpoints/:id", o.handleGetEndpoint)
	api.POST("/endpoints/:id/test", o.handleTestEndpoint)
}

type endpointView struct {
	ID          int64             `json:"id"`
	CompanyID   int64             `json:"companyId"`
	Provider    string            `json:"provider"`
	URL         string            `json:"url"`
	Status      string            `json:"status"`
	ErrorCount  int64             `json:"errorCount"`
	LastEventAt *time.Time        `json:"lastEventAt"`
	Events      []auditRecordView `json:"events"`
}

type auditRecordView struct {
	ID           int64      `json:"id"`
	EventType    string     `json:"eventType"`
	Payload      string     `json:"payload"`
	Processed    bool       `json:"processed"`
	ProcessedAt  *time.Time `json:"processedAt"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func (o *OperatorRoutes) handleGetEndpoint(c echo.Context) error {
	id, err := endpointID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	endpoint, err := o.endpoints.GetEndpointByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Endpoint not found"})
		}
		return err
	}
	records, err := o.endpoints.ListAuditRecords(ctx, id, operatorAuditLimit)
	if err != nil {
		return err
	}

	view := endpointView{
		ID:          endpoint.ID,
		CompanyID:   endpoint.CompanyID,
		Provider:    endpoint.Provider,
		URL:         endpoint.URL,
		Status:      string(endpoint.Status),
		ErrorCount:  endpoint.ErrorCount,
		LastEventAt: endpoint.LastEventAt,
		Events:      make([]auditRecordView, 0, len(records)),
	}
	for _, record := range records {
		view.Events = append(view.Events, auditRecordView{
			ID:           record.ID,
			EventType:    record.EventType,
			Payload:      record.RawPayload,
			Processed:    record.Processed,
			ProcessedAt:  record.ProcessedAt,
			ErrorMessage: record.ErrorMessage,
			CreatedAt:    record.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, view)
}

// handleTestEndpoint replays the request body, or the provider sample when the
// body is empty, through the endpoint.
func (o *OperatorRoutes) handleTestEndpoint(c echo.Context) error {
	id, err := endpointID(c)
	if err != nil {
		return err
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, o.maxPayloadBytes))
	if err != nil {
		webhooks.WriteDispatchError(c.Response(), services.ErrPayloadTooLarge)
		return nil
	}

	result, err := o.replayer.Replay(c.Request().Context(), services.ReplayCommand{EndpointID: id, Payload: body})
	if err != nil {
		webhooks.WriteDispatchError(c.Response(), err)
		return nil
	}
	if result.Skipped {
		return c.JSON(http.StatusOK, map[string]bool{"success": true, "skipped": true})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":     true,
		"appointment": webhooks.NewAppointmentView(result.Appointment),
	})
}

func endpointID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid endpoint id")
	}
	return id, nil
}
