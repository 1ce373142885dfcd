// Package notify delivers feedback-request messages to customers.
//
// Tenant templates and subjects may use the placeholders {{customerName}},
// {{companyName}} and {{feedbackUrl}}. {{feedbackLink}} is accepted as an
// alias of {{feedbackUrl}}.
package notify

import (
	"bytes"
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/fr0stylo/feedbackgate/internal/app/ports"
)

const (
	defaultSubject  = "How was your visit with {{companyName}}?"
	defaultTemplate = "Hi {{customerName}},\n\nThank you for choosing {{companyName}}. We would love to hear how your appointment went.\n\nIt only takes a minute: {{feedbackUrl}}"
)

var linkPlaceholders = []string{"{{feedbackUrl}}", "{{feedbackLink}}"}

// Email is a rendered feedback-request message.
type Email struct {
	Subject  string
	HTMLBody string
}

type segmentKind int

const (
	segmentText segmentKind = iota
	segmentLink
	segmentBreak
)

type emailSegment struct {
	kind segmentKind
	text string
}

type emailParagraph []emailSegment

// BuildFeedbackEmail expands the tenant's subject and template, falling back
// to the defaults when either is empty.
func BuildFeedbackEmail(ctx context.Context, req ports.FeedbackRequest) (Email, error) {
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = defaultSubject
	}
	subject = expand(subject, req)
	subject = strings.Join(strings.Fields(subject), " ")

	var buf bytes.Buffer
	if err := FeedbackEmail(req).Render(ctx, &buf); err != nil {
		return Email{}, err
	}
	return Email{Subject: subject, HTMLBody: buf.String()}, nil
}

// FeedbackEmail renders the HTML body of a feedback request. Every blank-line
// separated block of the template becomes a paragraph.
func FeedbackEmail(req ports.FeedbackRequest) templ.Component {
	body := req.Template
	if strings.TrimSpace(body) == "" {
		body = defaultTemplate
	}
	return feedbackEmailBody(paragraphs(body, req), templ.URL(req.FeedbackURL))
}

func paragraphs(body string, req ports.FeedbackRequest) []emailParagraph {
	var out []emailParagraph
	for _, block := range strings.Split(body, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		var paragraph emailParagraph
		for i, line := range strings.Split(block, "\n") {
			if i > 0 {
				paragraph = append(paragraph, emailSegment{kind: segmentBreak})
			}
			paragraph = append(paragraph, lineSegments(line, req)...)
		}
		out = append(out, paragraph)
	}
	return out
}

// lineSegments splits on link placeholders before names are substituted, so
// a customer name cannot introduce a link.
func lineSegments(line string, req ports.FeedbackRequest) []emailSegment {
	var segments []emailSegment
	for line != "" {
		at, placeholder := nextLinkPlaceholder(line)
		if at < 0 {
			segments = append(segments, emailSegment{kind: segmentText, text: expandNames(line, req)})
			break
		}
		if at > 0 {
			segments = append(segments, emailSegment{kind: segmentText, text: expandNames(line[:at], req)})
		}
		segments = append(segments, emailSegment{kind: segmentLink})
		line = line[at+len(placeholder):]
	}
	return segments
}

func nextLinkPlaceholder(text string) (int, string) {
	at, found := -1, ""
	for _, placeholder := range linkPlaceholders {
		if i := strings.Index(text, placeholder); i >= 0 && (at < 0 || i < at) {
			at, found = i, placeholder
		}
	}
	return at, found
}

func expandNames(text string, req ports.FeedbackRequest) string {
	return strings.NewReplacer(
		"{{customerName}}", req.CustomerName,
		"{{companyName}}", req.CompanyName,
	).Replace(text)
}

func expand(text string, req ports.FeedbackRequest) string {
	return strings.NewReplacer(
		"{{customerName}}", req.CustomerName,
		"{{companyName}}", req.CompanyName,
		"{{feedbackUrl}}", req.FeedbackURL,
		"{{feedbackLink}}", req.FeedbackURL,
	).Replace(text)
}
