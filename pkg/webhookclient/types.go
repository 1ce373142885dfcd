package webhookclient

import (
	"net/http"
	"time"
)

// Client delivers signed provider webhooks to a gateway endpoint URL.
type Client struct {
	URL        string
	Provider   string
	Secret     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Appointment is a generic-provider appointment event.
type Appointment struct {
	CustomerName  string
	CustomerEmail string
	AppointmentAt time.Time
	// CloudEvent wraps the payload in a structured-mode CloudEvent envelope.
	CloudEvent bool
	Source     string
}

// Response is the gateway's answer to one delivery.
type Response struct {
	StatusCode int
	Body       []byte
}
