// Command webhooksigner signs provider payloads and delivers them to a
// gateway endpoint, once or on an interval.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fr0stylo/feedbackgate/internal/providers"
	"github.com/fr0stylo/feedbackgate/pkg/webhookclient"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	interval, _ := cfg.interval()

	client := webhookclient.Client{URL: cfg.URL, Provider: cfg.Provider, Secret: cfg.Secret}
	if interval == 0 {
		if err := sendWebhook(client, cfg); err != nil {
			fmt.Fprintln(os.Stderr, "webhook error:", err)
			os.Exit(1)
		}
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := sendWebhook(client, cfg); err != nil {
			fmt.Fprintln(os.Stderr, "webhook error:", err)
		}
		<-ticker.C
	}
}

func sendWebhook(client webhookclient.Client, cfg config) error {
	body, err := payload(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	resp, err := client.Send(ctx, body)
	if err != nil {
		return err
	}
	fmt.Printf("Webhook status: %d %s\n", resp.StatusCode, string(resp.Body))
	return nil
}

func payload(cfg config) ([]byte, error) {
	if cfg.PayloadFile != "" {
		body, err := os.ReadFile(cfg.PayloadFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload: %w", err)
		}
		return body, nil
	}
	body, ok := providers.SamplePayload(cfg.Provider, time.Now())
	if !ok {
		return nil, fmt.Errorf("no sample payload for provider %q", cfg.Provider)
	}
	return body, nil
}
