package services

import (
	"errors"

	"github.com/fr0stylo/feedbackgate/internal/providers"
)

var (
	// ErrInvalidProvider indicates the request names an unsupported provider.
	ErrInvalidProvider = errors.New("invalid provider")
	// ErrEndpointNotFound indicates no live endpoint matches provider and path.
	ErrEndpointNotFound = errors.New("webhook url not found")
	// ErrMissingSignature indicates the provider signature header is absent.
	ErrMissingSignature = errors.New("missing signature")
	// ErrInvalidSignature indicates signature mismatch.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrIntegrationNotFound indicates the tenant has no integration for the provider.
	ErrIntegrationNotFound = errors.New("integration not found")
	// ErrInvalidCredentials indicates the stored signing credential is unusable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidPayload indicates an authenticated payload that cannot be normalized.
	ErrInvalidPayload = providers.ErrInvalidPayload
	// ErrPayloadTooLarge indicates the request body exceeded the configured limit.
	ErrPayloadTooLarge = errors.New("payload too large")
	// ErrCompanyNotFound is recorded verbatim as the audit error message.
	ErrCompanyNotFound = errors.New("Company not found")
	// ErrWebhookProcessingFailed wraps every failure inside event processing.
	ErrWebhookProcessingFailed = errors.New("webhook processing failed")
	// ErrInvalidReplay indicates a malformed replay command.
	ErrInvalidReplay = errors.New("invalid replay request")
)

// DispatchErrorKind classifies gateway failures for transport-specific mapping.
type DispatchErrorKind string

const (
	// DispatchErrorUnknown is used when error is nil or not classified.
	DispatchErrorUnknown DispatchErrorKind = "unknown"
	// DispatchErrorInvalidProvider indicates an unknown provider tag.
	DispatchErrorInvalidProvider DispatchErrorKind = "invalid_provider"
	// DispatchErrorEndpointNotFound indicates routing failure.
	DispatchErrorEndpointNotFound DispatchErrorKind = "endpoint_not_found"
	// DispatchErrorMissingSignature indicates an absent signature header.
	DispatchErrorMissingSignature DispatchErrorKind = "missing_signature"
	// DispatchErrorInvalidSignature indicates signature mismatch.
	DispatchErrorInvalidSignature DispatchErrorKind = "invalid_signature"
	// DispatchErrorIntegrationNotFound indicates a missing tenant integration.
	DispatchErrorIntegrationNotFound DispatchErrorKind = "integration_not_found"
	// DispatchErrorInvalidCredentials indicates an unusable signing credential.
	DispatchErrorInvalidCredentials DispatchErrorKind = "invalid_credentials"
	// DispatchErrorInvalidPayload indicates a payload that failed normalization.
	DispatchErrorInvalidPayload DispatchErrorKind = "invalid_payload"
	// DispatchErrorPayloadTooLarge indicates an oversized request body.
	DispatchErrorPayloadTooLarge DispatchErrorKind = "payload_too_large"
	// DispatchErrorInvalidRequest indicates a rejected operator request.
	DispatchErrorInvalidRequest DispatchErrorKind = "invalid_request"
	// DispatchErrorProcessingFailed indicates a failure inside event processing.
	DispatchErrorProcessingFailed DispatchErrorKind = "processing_failed"
)

// ClassifyDispatchError classifies a returned gateway error.
func ClassifyDispatchError(err error) DispatchErrorKind {
	switch {
	case err == nil:
		return DispatchErrorUnknown
	case errors.Is(err, ErrWebhookProcessingFailed):
		return DispatchErrorProcessingFailed
	case errors.Is(err, ErrInvalidProvider):
		return DispatchErrorInvalidProvider
	case errors.Is(err, ErrEndpointNotFound):
		return DispatchErrorEndpointNotFound
	case errors.Is(err, ErrMissingSignature):
		return DispatchErrorMissingSignature
	case errors.Is(err, ErrInvalidSignature):
		return DispatchErrorInvalidSignature
	case errors.Is(err, ErrIntegrationNotFound):
		return DispatchErrorIntegrationNotFound
	case errors.Is(err, ErrInvalidCredentials):
		return DispatchErrorInvalidCredentials
	case errors.Is(err, ErrInvalidPayload):
		return DispatchErrorInvalidPayload
	case errors.Is(err, ErrPayloadTooLarge):
		return DispatchErrorPayloadTooLarge
	case errors.Is(err, ErrInvalidReplay):
		return DispatchErrorInvalidRequest
	default:
		return DispatchErrorUnknown
	}
}
