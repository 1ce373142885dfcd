package domain

import (
	"testing"
	"time"
)

func TestOnFailureCountsConsecutiveErrors(t *testing.T) {
	t.Parallel()

	health := EndpointHealth{Status: EndpointStatusActive}
	for i := 0; i < 5; i++ {
		health = OnFailure(health)
	}

	if health.Status != EndpointStatusError {
		t.Fatalf("expected ERROR status, got %q", health.Status)
	}
	if health.ErrorCount != 5 {
		t.Fatalf("expected error count 5, got %d", health.ErrorCount)
	}
	if health.LastEventAt != nil {
		t.Fatalf("expected failures to leave last event unset, got %v", health.LastEventAt)
	}
}

func TestOnSuccessResetsErrorCount(t *testing.T) {
	t.Parallel()

	health := OnFailure(OnFailure(EndpointHealth{Status: EndpointStatusActive}))
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.FixedZone("CET", 3600))

	health = OnSuccess(health, now)
	if health.Status != EndpointStatusActive {
		t.Fatalf("expected ACTIVE status, got %q", health.Status)
	}
	if health.ErrorCount != 0 {
		t.Fatalf("expected error count reset, got %d", health.ErrorCount)
	}
	if health.LastEventAt == nil || !health.LastEventAt.Equal(now) {
		t.Fatalf("unexpected last event: %v", health.LastEventAt)
	}
	if health.LastEventAt.Location() != time.UTC {
		t.Fatalf("expected UTC last event, got %v", health.LastEventAt.Location())
	}
}

func TestOnFailureKeepsLastSuccessTimestamp(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	health := OnFailure(OnSuccess(EndpointHealth{}, now))
	if health.LastEventAt == nil || !health.LastEventAt.Equal(now) {
		t.Fatalf("expected last success timestamp kept, got %v", health.LastEventAt)
	}
	if health.ErrorCount != 1 {
		t.Fatalf("expected error count 1, got %d", health.ErrorCount)
	}
}

func TestParseEndpointStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want EndpointStatus
	}{
		{in: "ACTIVE", want: EndpointStatusActive},
		{in: "ERROR", want: EndpointStatusError},
		{in: "", want: EndpointStatusActive},
		{in: "weird", want: EndpointStatusActive},
	}
	for _, tt := range tests {
		if got := ParseEndpointStatus(tt.in); got != tt.want {
			t.Fatalf("ParseEndpointStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
