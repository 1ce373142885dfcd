package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultMaxPayloadBytes   = 1 << 20
	minOperatorTokenLength   = 24
	defaultSMTPPort          = 587
	localPublicURLFormat     = "http://localhost:%d"
	defaultDatabasePath      = "data/feedbackgate"
	defaultServiceIdentifier = "feedbackgate"
)

type Config struct {
	Environment   string
	Server        ServerConfig
	Database      DatabaseConfig
	Webhooks      WebhookConfig
	Operator      OperatorConfig
	SMTP          SMTPConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Port      int
	PublicURL string
}

type DatabaseConfig struct {
	Path      string
	LogTiming bool
}

type WebhookConfig struct {
	MaxPayloadBytes int64
}

// OperatorConfig guards the operator API. An empty token disables it.
type OperatorConfig struct {
	Token string
}

// SMTPConfig configures feedback-request delivery. An empty host selects the
// log-only notifier.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

type LoggingConfig struct {
	Level  string
	Format string
}

type ObservabilityConfig struct {
	Enabled           bool
	OTLPEndpoint      string
	OTLPTraceHeaders  map[string]string
	OTLPMetricHeaders map[string]string
	ServiceName       string
	ServiceVer        string
	SamplingRatio     float64
	MetricsConsole    bool
}

func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("feedbackgate_env", "")
	v.SetDefault("app_env", "")
	v.SetDefault("go_env", "")
	v.SetDefault("feedbackgate_port", 8080)
	v.SetDefault("feedbackgate_db_path", defaultDatabasePath)
	v.SetDefault("feedbackgate_db_timing", false)
	v.SetDefault("feedbackgate_public_url", "")
	v.SetDefault("feedbackgate_operator_token", "")
	v.SetDefault("feedbackgate_max_payload_bytes", defaultMaxPayloadBytes)
	v.SetDefault("feedbackgate_log_level", "info")
	v.SetDefault("feedbackgate_log_format", "text")
	v.SetDefault("smtp_host", "")
	v.SetDefault("smtp_port", defaultSMTPPort)
	v.SetDefault("smtp_username", "")
	v.SetDefault("smtp_password", "")
	v.SetDefault("smtp_sender", "")
	v.SetDefault("feedbackgate_otel_enabled", false)
	v.SetDefault("otel_exporter_otlp_endpoint", "")
	v.SetDefault("otel_exporter_otlp_headers", "")
	v.SetDefault("otel_exporter_otlp_traces_headers", "")
	v.SetDefault("otel_exporter_otlp_metrics_headers", "")
	v.SetDefault("otel_service_name", defaultServiceIdentifier)
	v.SetDefault("feedbackgate_version", "dev")
	v.SetDefault("otel_service_version", "")
	v.SetDefault("feedbackgate_otel_sampling_ratio", 1.0)
	v.SetDefault("feedbackgate_otel_metrics_console", false)

	env := resolveEnvironment(v)
	port := v.GetInt("feedbackgate_port")
	if port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid FEEDBACKGATE_PORT: %d", port)
	}

	maxPayload := v.GetInt64("feedbackgate_max_payload_bytes")
	if maxPayload <= 0 {
		return Config{}, fmt.Errorf("invalid FEEDBACKGATE_MAX_PAYLOAD_BYTES: %d", maxPayload)
	}

	smtpPort := v.GetInt("smtp_port")
	if smtpPort <= 0 || smtpPort > 65535 {
		return Config{}, fmt.Errorf("invalid SMTP_PORT: %d", smtpPort)
	}

	samplingRatio := v.GetFloat64("feedbackgate_otel_sampling_ratio")
	if samplingRatio < 0 {
		samplingRatio = 0
	}
	if samplingRatio > 1 {
		samplingRatio = 1
	}

	serviceName := strings.TrimSpace(v.GetString("otel_service_name"))
	if serviceName == "" {
		serviceName = defaultServiceIdentifier
	}

	serviceVersion := strings.TrimSpace(v.GetString("feedbackgate_version"))
	if serviceVersion == "" {
		serviceVersion = strings.TrimSpace(v.GetString("otel_service_version"))
	}
	if serviceVersion == "" {
		serviceVersion = "dev"
	}

	otlpEndpoint := strings.TrimSpace(v.GetString("otel_exporter_otlp_endpoint"))
	otlpCommonHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_headers"))
	otlpTraceHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_traces_headers"))
	otlpMetricHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_metrics_headers"))
	metricsConsole := v.GetBool("feedbackgate_otel_metrics_console")
	otelEnabled := v.GetBool("feedbackgate_otel_enabled") || otlpEndpoint != "" || metricsConsole

	cfg := Config{
		Environment: env,
		Server: ServerConfig{
			Port:      port,
			PublicURL: strings.TrimRight(strings.TrimSpace(v.GetString("feedbackgate_public_url")), "/"),
		},
		Database: DatabaseConfig{
			Path:      strings.TrimSpace(v.GetString("feedbackgate_db_path")),
			LogTiming: v.GetBool("feedbackgate_db_timing"),
		},
		Webhooks: WebhookConfig{MaxPayloadBytes: maxPayload},
		Operator: OperatorConfig{Token: strings.TrimSpace(v.GetString("feedbackgate_operator_token"))},
		SMTP: SMTPConfig{
			Host:     strings.TrimSpace(v.GetString("smtp_host")),
			Port:     smtpPort,
			Username: strings.TrimSpace(v.GetString("smtp_username")),
			Password: v.GetString("smtp_password"),
			Sender:   strings.TrimSpace(v.GetString("smtp_sender")),
		},
		Logging: LoggingConfig{
			Level:  strings.TrimSpace(v.GetString("feedbackgate_log_level")),
			Format: strings.TrimSpace(v.GetString("feedbackgate_log_format")),
		},
		Observability: ObservabilityConfig{
			Enabled:           otelEnabled,
			OTLPEndpoint:      otlpEndpoint,
			OTLPTraceHeaders:  mergeHeaderMaps(otlpCommonHeaders, otlpTraceHeaders),
			OTLPMetricHeaders: mergeHeaderMaps(otlpCommonHeaders, otlpMetricHeaders),
			ServiceName:       serviceName,
			ServiceVer:        serviceVersion,
			SamplingRatio:     samplingRatio,
			MetricsConsole:    metricsConsole,
		},
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = defaultDatabasePath
	}
	if cfg.SMTP.Host != "" && cfg.SMTP.Sender == "" {
		return Config{}, fmt.Errorf("SMTP_SENDER is required when SMTP_HOST is set")
	}
	if cfg.Server.PublicURL != "" {
		if _, err := url.ParseRequestURI(cfg.Server.PublicURL); err != nil {
			return Config{}, fmt.Errorf("invalid FEEDBACKGATE_PUBLIC_URL: %w", err)
		}
	}

	if cfg.IsLocalDevelopment() {
		if cfg.Server.PublicURL == "" {
			cfg.Server.PublicURL = fmt.Sprintf(localPublicURLFormat, port)
		}
		return cfg, nil
	}

	if cfg.Server.PublicURL == "" {
		return Config{}, fmt.Errorf("FEEDBACKGATE_PUBLIC_URL is required outside local/dev environments")
	}
	if cfg.Operator.Token != "" && len(cfg.Operator.Token) < minOperatorTokenLength {
		return Config{}, fmt.Errorf("FEEDBACKGATE_OPERATOR_TOKEN must be at least %d characters outside local/dev environments", minOperatorTokenLength)
	}

	return cfg, nil
}

func parseOTLPHeaders(raw string) map[string]string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	out := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func mergeHeaderMaps(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func (c Config) IsLocalDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case "", "local", "dev", "development", "test":
		return true
	default:
		return false
	}
}

// OperatorEnabled reports whether operator routes should be registered.
func (c Config) OperatorEnabled() bool {
	return c.Operator.Token != ""
}

func resolveEnvironment(v *viper.Viper) string {
	for _, key := range []string{"feedbackgate_env", "app_env", "go_env"} {
		value := strings.TrimSpace(v.GetString(key))
		if value != "" {
			return strings.ToLower(value)
		}
	}
	return ""
}
