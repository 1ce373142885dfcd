package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLogLevel(raw); got != want {
			t.Fatalf("ParseLogLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestLoggerAddsWebhookIdentity(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "info", "json")

	ctx := WithProvider(context.Background(), "calendly")
	ctx = WithEndpointIdentity(ctx, 7, 42)
	ctx = WithRequestMetadata(ctx, "req-1", "/webhooks/:provider")
	log.InfoContext(ctx, "webhook accepted")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode log record: %v (%s)", err, buf.String())
	}
	if record["provider"] != "calendly" {
		t.Fatalf("expected provider field, got %v", record["provider"])
	}
	if record["company_id"] != float64(7) || record["endpoint_id"] != float64(42) {
		t.Fatalf("expected endpoint identity, got %v / %v", record["company_id"], record["endpoint_id"])
	}
	if record["request_id"] != "req-1" {
		t.Fatalf("expected request id, got %v", record["request_id"])
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "error", "text")
	log.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}
}
