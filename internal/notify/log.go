package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fr0stylo/feedbackgate/internal/app/ports"
)

// LogNotifier renders feedback requests and logs them instead of sending.
// It is used when no SMTP relay is configured.
type LogNotifier struct {
	log *slog.Logger
}

var _ ports.Notifier = (*LogNotifier)(nil)

// NewLogNotifier constructs a log-only notifier.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) SendFeedbackRequest(ctx context.Context, req ports.FeedbackRequest) error {
	email, err := BuildFeedbackEmail(ctx, req)
	if err != nil {
		return fmt.Errorf("render feedback email: %w", err)
	}
	n.log.InfoContext(ctx, "Feedback request (not sent, SMTP disabled)",
		"to", req.RecipientEmail,
		"subject", email.Subject,
		"appointment_id", req.AppointmentID,
		"feedback_url", req.FeedbackURL,
	)
	return nil
}
