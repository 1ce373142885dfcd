package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"github.com/fr0stylo/feedbackgate/internal/app/domain"
	"github.com/fr0stylo/feedbackgate/internal/app/ports"
	"github.com/fr0stylo/feedbackgate/internal/app/ports/mocks"
	"github.com/fr0stylo/feedbackgate/internal/app/services"
	"github.com/fr0stylo/feedbackgate/internal/webhooks"
)

const operatorToken = "operator-token-0123456789abcdef"

type recordingDispatcher struct {
	cmd services.DispatchCommand
}

func (d *recordingDispatcher) Dispatch(_ context.Context, cmd services.DispatchCommand) (services.DispatchResult, error) {
	d.cmd = cmd
	return services.DispatchResult{Skipped: true}, nil
}

type stubReplayer struct {
	cmd    services.ReplayCommand
	calls  int
	result services.DispatchResult
	err    error
}

func (r *stubReplayer) Replay(_ context.Context, cmd services.ReplayCommand) (services.DispatchResult, error) {
	r.calls++
	r.cmd = cmd
	return r.result, r.err
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func serve(e *echo.Echo, method, target string, body []byte, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestWebhookRoutePassesProviderAndPath(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	e := echo.New()
	NewWebhookRoutes(webhooks.NewHandler(dispatcher, 0, nil)).RegisterRoutes(e)

	rec := serve(e, http.MethodPost, "/webhooks/generic/acme-123", []byte(`{}`), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if dispatcher.cmd.Provider != "generic" || dispatcher.cmd.Path != "/webhooks/generic/acme-123" {
		t.Fatalf("unexpected dispatch command: %+v", dispatcher.cmd)
	}
	if string(dispatcher.cmd.Body) != `{}` {
		t.Fatalf("unexpected body: %q", dispatcher.cmd.Body)
	}
}

func TestWebhookRouteRefusesPathWithoutTenantSegment(t *testing.T) {
	for _, target := range []string{"/webhooks/generic", "/webhooks/generic/"} {
		dispatcher := &recordingDispatcher{}
		e := echo.New()
		NewWebhookRoutes(webhooks.NewHandler(dispatcher, 0, nil)).RegisterRoutes(e)

		rec := serve(e, http.MethodPost, target, []byte(`{}`), "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d: %s", target, rec.Code, rec.Body.String())
		}
		if dispatcher.cmd.Provider != "" {
			t.Fatalf("%s: dispatch must not run, got %+v", target, dispatcher.cmd)
		}
	}
}

func TestOperatorRoutesDisabledWithoutToken(t *testing.T) {
	replayer := &stubReplayer{}
	e := echo.New()
	NewOperatorRoutes("", replayer, mocks.NewMockEndpointStore(t), 0).RegisterRoutes(e)

	rec := serve(e, http.MethodPost, "/api/operator/endpoints/1/test", nil, "anything")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if replayer.calls != 0 {
		t.Fatalf("replay must not run")
	}
}

func TestOperatorRoutesRequireToken(t *testing.T) {
	replayer := &stubReplayer{}
	e := echo.New()
	NewOperatorRoutes(operatorToken, replayer, mocks.NewMockEndpointStore(t), 0).RegisterRoutes(e)

	rec := serve(e, http.MethodPost, "/api/operator/endpoints/1/test", nil, "wrong-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	rec = serve(e, http.MethodPost, "/api/operator/endpoints/1/test", nil, "")
	if rec.Code == http.StatusOK {
		t.Fatalf("expected rejection without token")
	}
	if replayer.calls != 0 {
		t.Fatalf("replay must not run for unauthenticated requests")
	}
}

func TestOperatorTestEndpointReplays(t *testing.T) {
	replayer := &stubReplayer{result: services.DispatchResult{
		Appointment: ports.Appointment{
			ID:            "appt-1",
			CustomerName:  "Test Customer",
			CustomerEmail: "test.customer@example.com",
			AppointmentAt: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
			FeedbackSent:  true,
		},
	}}
	e := echo.New()
	NewOperatorRoutes(operatorToken, replayer, mocks.NewMockEndpointStore(t), 0).RegisterRoutes(e)

	payload := []byte(`{"customerName":"A","customerEmail":"a@b.com","appointmentDate":"2025-03-10T10:00:00Z"}`)
	rec := serve(e, http.MethodPost, "/api/operator/endpoints/7/test", payload, operatorToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if replayer.cmd.EndpointID != 7 || !bytes.Equal(replayer.cmd.Payload, payload) {
		t.Fatalf("unexpected replay command: %+v", replayer.cmd)
	}

	var body struct {
		Success     bool                     `json:"success"`
		Appointment webhooks.AppointmentView `json:"appointment"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success || body.Appointment.ID != "appt-1" || body.Appointment.AppointmentAt != "2025-03-10T10:00:00Z" {
		t.Fatalf("unexpected response: %+v", body)
	}
}

func TestOperatorTestEndpointMapsErrors(t *testing.T) {
	replayer := &stubReplayer{err: services.ErrEndpointNotFound}
	e := echo.New()
	NewOperatorRoutes(operatorToken, replayer, mocks.NewMockEndpointStore(t), 0).RegisterRoutes(e)

	rec := serve(e, http.MethodPost, "/api/operator/endpoints/99/test", nil, operatorToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec = serve(e, http.MethodPost, "/api/operator/endpoints/abc/test", nil, operatorToken)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid id, got %d", rec.Code)
	}

	replayer.err = services.ErrInvalidReplay
	rec = serve(e, http.MethodPost, "/api/operator/endpoints/99/test", nil, operatorToken)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for rejected replay, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestOperatorGetEndpointReturnsHealthAndEvents(t *testing.T) {
	lastEvent := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	store := mocks.NewMockEndpointStore(t)
	store.EXPECT().GetEndpointByID(mock.Anything, int64(3)).Return(ports.Endpoint{
		ID:        3,
		CompanyID: 1,
		Provider:  "generic",
		URL:       "https://feedback.example.com/webhooks/generic/acme",
		EndpointHealth: domain.EndpointHealth{
			Status:      domain.EndpointStatusError,
			ErrorCount:  2,
			LastEventAt: &lastEvent,
		},
	}, nil).Once()
	store.EXPECT().ListAuditRecords(mock.Anything, int64(3), int64(operatorAuditLimit)).Return([]ports.AuditRecord{
		{ID: 9, EndpointID: 3, EventType: "appointment.created", RawPayload: "{}", ErrorMessage: "Company not found", CreatedAt: lastEvent},
	}, nil).Once()

	e := echo.New()
	NewOperatorRoutes(operatorToken, &stubReplayer{}, store, 0).RegisterRoutes(e)

	rec := serve(e, http.MethodGet, "/api/operator/endpoints/3", nil, operatorToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body endpointView
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Status != "ERROR" || body.ErrorCount != 2 || len(body.Events) != 1 || body.Events[0].ErrorMessage != "Company not found" {
		t.Fatalf("unexpected response: %+v", body)
	}
}

func TestOperatorGetEndpointNotFound(t *testing.T) {
	store := mocks.NewMockEndpointStore(t)
	store.EXPECT().GetEndpointByID(mock.Anything, int64(4)).Return(ports.Endpoint{}, ports.ErrNotFound).Once()

	e := echo.New()
	NewOperatorRoutes(operatorToken, &stubReplayer{}, store, 0).RegisterRoutes(e)

	rec := serve(e, http.MethodGet, "/api/operator/endpoints/4", nil, operatorToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHealthRoute(t *testing.T) {
	e := echo.New()
	NewHealthRoutes(stubPinger{}).RegisterRoutes(e)
	if rec := serve(e, http.MethodGet, "/healthz", nil, ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	e = echo.New()
	NewHealthRoutes(stubPinger{err: errors.New("closed")}).RegisterRoutes(e)
	if rec := serve(e, http.MethodGet, "/healthz", nil, ""); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
