package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "signer.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaultsProvider(t *testing.T) {
	path := writeConfig(t, "url: http://localhost:8080/webhooks/generic/acme\nsecret: s3cret\ninterval: 30s\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Provider != "generic" {
		t.Fatalf("expected generic provider, got %q", cfg.Provider)
	}
	interval, err := cfg.interval()
	if err != nil || interval != 30*time.Second {
		t.Fatalf("unexpected interval %s: %v", interval, err)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"missing secret":    "url: http://localhost\n",
		"bad interval":      "url: http://localhost\nsecret: x\ninterval: soon\n",
		"negative interval": "url: http://localhost\nsecret: x\ninterval: -1s\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, content)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
	if _, err := loadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestPayloadFallsBackToSample(t *testing.T) {
	body, err := payload(config{Provider: "setmore"})
	if err != nil || len(body) == 0 {
		t.Fatalf("expected sample payload, got %q: %v", body, err)
	}
	if _, err := payload(config{Provider: "zoom"}); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}
