package notify

import (
	"context"
	"strings"
	"testing"

	"github.com/fr0stylo/feedbackgate/internal/app/ports"
)

func testRequest() ports.FeedbackRequest {
	return ports.FeedbackRequest{
		RecipientEmail: "x@y.com",
		CustomerName:   "John Doe",
		CompanyName:    "Acme Dental",
		AppointmentID:  "appt-1",
		FeedbackURL:    "https://feedback.example.com/feedback/appt-1",
	}
}

func TestBuildFeedbackEmailUsesDefaults(t *testing.T) {
	email, err := BuildFeedbackEmail(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("build email: %v", err)
	}
	if email.Subject != "How was your visit with Acme Dental?" {
		t.Fatalf("unexpected subject: %q", email.Subject)
	}
	for _, want := range []string{
		"<p>Hi John Doe,</p>",
		"Thank you for choosing Acme Dental.",
		`<a href="https://feedback.example.com/feedback/appt-1">Leave feedback</a>`,
	} {
		if !strings.Contains(email.HTMLBody, want) {
			t.Fatalf("expected body to contain %q, got %s", want, email.HTMLBody)
		}
	}
}

func TestBuildFeedbackEmailUsesCompanyTemplate(t *testing.T) {
	req := testRequest()
	req.Subject = "Feedback for {{companyName}}"
	req.Template = "Dear {{customerName}}\nrate us at {{feedbackLink}}"

	email, err := BuildFeedbackEmail(context.Background(), req)
	if err != nil {
		t.Fatalf("build email: %v", err)
	}
	if email.Subject != "Feedback for Acme Dental" {
		t.Fatalf("unexpected subject: %q", email.Subject)
	}
	want := `<p>Dear John Doe<br>rate us at <a href="https://feedback.example.com/feedback/appt-1">https://feedback.example.com/feedback/appt-1</a></p>`
	if !strings.Contains(email.HTMLBody, want) {
		t.Fatalf("expected body to contain %q, got %s", want, email.HTMLBody)
	}
}

func TestBuildFeedbackEmailExpandsFeedbackURL(t *testing.T) {
	req := testRequest()
	req.Subject = "Review {{companyName}}: {{feedbackUrl}}"
	req.Template = "Rate us: {{feedbackUrl}}"

	email, err := BuildFeedbackEmail(context.Background(), req)
	if err != nil {
		t.Fatalf("build email: %v", err)
	}
	if strings.Contains(email.HTMLBody, "{{feedbackUrl}}") || strings.Contains(email.Subject, "{{feedbackUrl}}") {
		t.Fatalf("placeholder left unexpanded: %q / %s", email.Subject, email.HTMLBody)
	}
	want := `<p>Rate us: <a href="https://feedback.example.com/feedback/appt-1">https://feedback.example.com/feedback/appt-1</a></p>`
	if !strings.Contains(email.HTMLBody, want) {
		t.Fatalf("expected body to contain %q, got %s", want, email.HTMLBody)
	}
	if email.Subject != "Review Acme Dental: https://feedback.example.com/feedback/appt-1" {
		t.Fatalf("unexpected subject: %q", email.Subject)
	}
}

func TestBuildFeedbackEmailNameCannotInjectLink(t *testing.T) {
	req := testRequest()
	req.CustomerName = "{{feedbackUrl}}"
	req.Template = "Hi {{customerName}}"

	email, err := BuildFeedbackEmail(context.Background(), req)
	if err != nil {
		t.Fatalf("build email: %v", err)
	}
	if !strings.Contains(email.HTMLBody, "<p>Hi {{feedbackUrl}}</p>") {
		t.Fatalf("customer name must be rendered as text, got %s", email.HTMLBody)
	}
}

func TestBuildFeedbackEmailEscapesValues(t *testing.T) {
	req := testRequest()
	req.CustomerName = `<script>alert("x")</script>`
	req.Subject = "Hello\r\nBcc: victim@example.com {{customerName}}"

	email, err := BuildFeedbackEmail(context.Background(), req)
	if err != nil {
		t.Fatalf("build email: %v", err)
	}
	if strings.Contains(email.HTMLBody, "<script>") {
		t.Fatalf("customer name not escaped: %s", email.HTMLBody)
	}
	if strings.ContainsAny(email.Subject, "\r\n") {
		t.Fatalf("subject must be a single line: %q", email.Subject)
	}
}
