package webhookclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fr0stylo/feedbackgate/internal/providers"
)

// Publish sends a generic appointment event.
func (c Client) Publish(ctx context.Context, appointment Appointment) (Response, error) {
	body, err := BuildAppointmentBody(appointment)
	if err != nil {
		return Response{}, err
	}
	return c.Send(ctx, body)
}

// Send signs body with the provider's scheme and posts it. Non-2xx responses
// are returned as errors alongside the response.
func (c Client) Send(ctx context.Context, body []byte) (Response, error) {
	endpoint := strings.TrimSpace(c.URL)
	secret := strings.TrimSpace(c.Secret)
	if endpoint == "" || secret == "" {
		return Response{}, fmt.Errorf("url/secret are required")
	}

	providerName := c.Provider
	if strings.TrimSpace(providerName) == "" {
		providerName = "generic"
	}
	provider, ok := providers.DefaultRegistry().Lookup(providerName)
	if !ok {
		return Response{}, fmt.Errorf("unknown provider %q", providerName)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		timeout := c.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(provider.SignatureHeader(), provider.Sign(secret, body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	result := Response{StatusCode: resp.StatusCode, Body: payload}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return result, fmt.Errorf("webhook rejected: status=%s body=%s", resp.Status, strings.TrimSpace(string(payload)))
	}
	return result, nil
}
