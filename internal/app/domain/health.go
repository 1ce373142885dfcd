package domain

import "time"

// EndpointStatus is the operator-facing health flag of a webhook endpoint.
type EndpointStatus string

const (
	// EndpointStatusActive indicates the last processed delivery succeeded.
	EndpointStatusActive EndpointStatus = "ACTIVE"
	// EndpointStatusError indicates the last processed delivery failed.
	EndpointStatusError EndpointStatus = "ERROR"
)

// EndpointHealth is the observational state kept per endpoint.
type EndpointHealth struct {
	Status      EndpointStatus
	ErrorCount  int64
	LastEventAt *time.Time
}

// OnSuccess returns the health after a successfully processed delivery.
func OnSuccess(h EndpointHealth, now time.Time) EndpointHealth {
	at := now.UTC()
	return EndpointHealth{
		Status:      EndpointStatusActive,
		ErrorCount:  0,
		LastEventAt: &at,
	}
}

// OnFailure returns the health after a failed delivery. The last-event
// timestamp only moves on success.
func OnFailure(h EndpointHealth) EndpointHealth {
	return EndpointHealth{
		Status:      EndpointStatusError,
		ErrorCount:  h.ErrorCount + 1,
		LastEventAt: h.LastEventAt,
	}
}

// ParseEndpointStatus maps a stored status value, defaulting to active.
func ParseEndpointStatus(raw string) EndpointStatus {
	if EndpointStatus(raw) == EndpointStatusError {
		return EndpointStatusError
	}
	return EndpointStatusActive
}
