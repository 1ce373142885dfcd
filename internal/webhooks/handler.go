// Package webhooks is the HTTP transport for inbound provider deliveries.
package webhooks

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fr0stylo/feedbackgate/internal/app/ports"
	"github.com/fr0stylo/feedbackgate/internal/app/services"
)

// DefaultMaxPayloadBytes bounds request bodies when no limit is configured.
const DefaultMaxPayloadBytes = 1 << 20

// Dispatcher runs one delivery through the gateway.
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd services.DispatchCommand) (services.DispatchResult, error)
}

// Handler processes provider webhook deliveries.
type Handler struct {
	gateway         Dispatcher
	maxPayloadBytes int64
	metrics         webhookMetrics
	log             *slog.Logger
}

// NewHandler constructs a webhook handler.
func NewHandler(gateway Dispatcher, maxPayloadBytes int64, log *slog.Logger) *Handler {
	if maxPayloadBytes <= 0 {
		maxPayloadBytes = DefaultMaxPayloadBytes
	}
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		gateway:         gateway,
		maxPayloadBytes: maxPayloadBytes,
		metrics:         newWebhookMetrics(),
		log:             log,
	}
}

// AppointmentView is the JSON shape of a created appointment.
type AppointmentView struct {
	ID            string `json:"id"`
	CompanyID     int64  `json:"companyId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	AppointmentAt string `json:"appointmentDate"`
	FeedbackSent  bool   `json:"feedbackSent"`
}

// NewAppointmentView maps an appointment for responses.
func NewAppointmentView(appointment ports.Appointment) AppointmentView {
	return AppointmentView{
		ID:            appointment.ID,
		CompanyID:     appointment.CompanyID,
		CustomerName:  appointment.CustomerName,
		CustomerEmail: appointment.CustomerEmail,
		AppointmentAt: appointment.AppointmentAt.UTC().Format(time.RFC3339),
		FeedbackSent:  appointment.FeedbackSent,
	}
}

type successResponse struct {
	Success     bool             `json:"success"`
	Skipped     bool             `json:"skipped,omitempty"`
	Appointment *AppointmentView `json:"appointment,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handle validates and processes a delivery for provider.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request, provider string) error {
	ctx := r.Context()
	h.metrics.recordRequest(ctx, provider)

	body, readErr := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxPayloadBytes))
	if readErr != nil {
		var tooLarge *http.MaxBytesError
		err := services.ErrInvalidPayload
		if errors.As(readErr, &tooLarge) {
			err = services.ErrPayloadTooLarge
		}
		h.metrics.recordRejected(ctx, provider, services.ClassifyDispatchError(err))
		WriteDispatchError(w, err)
		return nil
	}

	result, err := h.gateway.Dispatch(ctx, services.DispatchCommand{
		Provider: provider,
		Path:     r.URL.Path,
		Headers:  r.Header,
		Body:     body,
	})
	if err != nil {
		kind := services.ClassifyDispatchError(err)
		h.metrics.recordRejected(ctx, provider, kind)
		if kind == services.DispatchErrorUnknown {
			h.log.ErrorContext(ctx, "Unclassified webhook failure", "error", err)
		}
		WriteDispatchError(w, err)
		return nil
	}

	if result.Skipped {
		h.metrics.recordSkipped(ctx, provider)
		return writeJSON(w, http.StatusOK, successResponse{Success: true, Skipped: true})
	}

	h.metrics.recordAccepted(ctx, provider)
	view := NewAppointmentView(result.Appointment)
	return writeJSON(w, http.StatusOK, successResponse{Success: true, Appointment: &view})
}

// WriteDispatchError maps a classified gateway error to its HTTP response.
func WriteDispatchError(w http.ResponseWriter, err error) {
	switch services.ClassifyDispatchError(err) {
	case services.DispatchErrorInvalidProvider:
		_ = writeJSON(w, http.StatusNotFound, errorResponse{Error: "Invalid provider"})
	case services.DispatchErrorEndpointNotFound:
		_ = writeJSON(w, http.StatusNotFound, errorResponse{Error: "Webhook URL not found"})
	case services.DispatchErrorMissingSignature:
		_ = writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Missing signature"})
	case services.DispatchErrorInvalidSignature,
		services.DispatchErrorIntegrationNotFound,
		services.DispatchErrorInvalidCredentials:
		_ = writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid signature"})
	case services.DispatchErrorInvalidPayload:
		_ = writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid payload"})
	case services.DispatchErrorPayloadTooLarge:
		_ = writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "Payload too large"})
	case services.DispatchErrorInvalidRequest:
		_ = writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request"})
	default:
		_ = writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Webhook processing failed"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
