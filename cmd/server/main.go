package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fr0stylo/feedbackgate/internal/adapters/sqlite"
	"github.com/fr0stylo/feedbackgate/internal/app/ports"
	"github.com/fr0stylo/feedbackgate/internal/app/services"
	"github.com/fr0stylo/feedbackgate/internal/config"
	"github.com/fr0stylo/feedbackgate/internal/db"
	"github.com/fr0stylo/feedbackgate/internal/notify"
	"github.com/fr0stylo/feedbackgate/internal/observability"
	"github.com/fr0stylo/feedbackgate/internal/providers"
	"github.com/fr0stylo/feedbackgate/internal/server"
	"github.com/fr0stylo/feedbackgate/internal/server/routes"
	"github.com/fr0stylo/feedbackgate/internal/webhooks"
)

func Run() error {
	log := observability.NewLogger(os.Stdout, "info", "text")
	slog.SetDefault(log)

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log = observability.NewLogger(os.Stdout, cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.SetupOpenTelemetry(ctx, log, observability.OpenTelemetryConfig{
		Enabled:           cfg.Observability.Enabled,
		Environment:       cfg.Environment,
		OTLPEndpoint:      cfg.Observability.OTLPEndpoint,
		OTLPTraceHeaders:  cfg.Observability.OTLPTraceHeaders,
		OTLPMetricHeaders: cfg.Observability.OTLPMetricHeaders,
		ServiceName:       cfg.Observability.ServiceName,
		ServiceVer:        cfg.Observability.ServiceVer,
		SamplingRatio:     cfg.Observability.SamplingRatio,
		MetricsConsole:    cfg.Observability.MetricsConsole,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(ctx); err != nil {
			slog.Error("Failed to shutdown OpenTelemetry", "error", err)
		}
	}()

	database, err := db.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	if cfg.Database.LogTiming {
		go logDBLatencyStats(ctx, log, database)
	}

	store := sqlite.NewStore(database)
	processor := services.NewEventProcessor(store, newNotifier(cfg, log), cfg.Server.PublicURL, log)
	gateway := services.NewGateway(providers.DefaultRegistry(), store, processor, log)

	srv := server.New(log)
	srv.RegisterRouter(routes.NewHealthRoutes(database))
	srv.RegisterRouter(routes.NewWebhookRoutes(webhooks.NewHandler(gateway, cfg.Webhooks.MaxPayloadBytes, log)))
	srv.RegisterRouter(routes.NewOperatorRoutes(cfg.Operator.Token, gateway, store, cfg.Webhooks.MaxPayloadBytes))
	if !cfg.OperatorEnabled() {
		slog.Info("Operator API disabled, FEEDBACKGATE_OPERATOR_TOKEN not set")
	}

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("Starting server", "port", cfg.Server.Port, "providers", providers.DefaultRegistry().Names())
		errCh <- srv.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	if err := Run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func newNotifier(cfg config.Config, log *slog.Logger) ports.Notifier {
	if cfg.SMTP.Host == "" {
		slog.Warn("SMTP_HOST not set, feedback requests are logged instead of sent")
		return notify.NewLogNotifier(log)
	}
	return notify.NewSMTPNotifier(notify.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		Sender:   cfg.SMTP.Sender,
	}, log)
}

func logDBLatencyStats(ctx context.Context, log *slog.Logger, database *db.Database) {
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		for _, entry := range database.SlowestQueries(5) {
			log.Info("db_query_latency",
				"query", entry.Name,
				"count", entry.Count,
				"p50_ms", entry.P50.Milliseconds(),
				"p95_ms", entry.P95.Milliseconds(),
				"max_ms", entry.Max.Milliseconds(),
				"errors", entry.Errors,
				"providers", entry.Providers,
			)
		}
	}
}
