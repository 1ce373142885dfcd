package notify

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/fr0stylo/feedbackgate/internal/app/ports"
)

// ErrInvalidRecipient indicates a feedback request without a deliverable address.
var ErrInvalidRecipient = errors.New("invalid recipient")

var validate = validator.New()

// SMTPConfig configures the SMTP relay.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
	Timeout  time.Duration
}

// SMTPNotifier sends feedback requests through an SMTP relay.
type SMTPNotifier struct {
	cfg SMTPConfig
	log *slog.Logger
}

var _ ports.Notifier = (*SMTPNotifier)(nil)

// NewSMTPNotifier constructs an SMTP notifier.
func NewSMTPNotifier(cfg SMTPConfig, log *slog.Logger) *SMTPNotifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &SMTPNotifier{cfg: cfg, log: log}
}

// SendFeedbackRequest renders and delivers one feedback request.
func (n *SMTPNotifier) SendFeedbackRequest(ctx context.Context, req ports.FeedbackRequest) error {
	if err := validate.Var(req.RecipientEmail, "required,email"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidRecipient, req.RecipientEmail)
	}

	email, err := BuildFeedbackEmail(ctx, req)
	if err != nil {
		return fmt.Errorf("render feedback email: %w", err)
	}

	addr := net.JoinHostPort(n.cfg.Host, strconv.Itoa(n.cfg.Port))
	if err := n.send(ctx, addr, req.RecipientEmail, message(n.cfg.Sender, req.RecipientEmail, email)); err != nil {
		n.log.ErrorContext(ctx, "SMTP send failed", "error", err, "addr", addr, "appointment_id", req.AppointmentID)
		return fmt.Errorf("smtp send: %w", err)
	}
	n.log.InfoContext(ctx, "Feedback request sent", "addr", addr, "appointment_id", req.AppointmentID)
	return nil
}

func (n *SMTPNotifier) send(ctx context.Context, addr, to string, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, n.cfg.Timeout)
	defer cancel()

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, n.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: n.cfg.Host, MinVersion: tls.VersionTLS12}); err != nil {
			return err
		}
	}
	if n.cfg.Username != "" && n.cfg.Password != "" {
		if err := client.Auth(smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)); err != nil {
			return err
		}
	}
	if err := client.Mail(n.cfg.Sender); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func message(from, to string, email Email) []byte {
	return []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", headerValue(from), headerValue(to), headerValue(email.Subject)) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			email.HTMLBody,
	)
}

func headerValue(value string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(value)
}
