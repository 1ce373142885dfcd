package ports

import "context"

// FeedbackRequest is the message sent to a customer after an appointment.
type FeedbackRequest struct {
	RecipientEmail string
	CustomerName   string
	CompanyName    string
	AppointmentID  string
	FeedbackURL    string
	Template       string
	Subject        string
}

// Notifier delivers feedback requests. Errors are returned to the caller.
type Notifier interface {
	SendFeedbackRequest(ctx context.Context, req FeedbackRequest) error
}
