package db

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/fr0stylo/feedbackgate/internal/db/queries"
	"github.com/fr0stylo/feedbackgate/internal/observability"
)

const maxSamplesPerQuery = 512

type queryWindow struct {
	durations []time.Duration
	errors    int
	providers map[string]int
}

// queryLatencyTracker keeps a bounded latency window per sqlc query and
// attributes calls to the webhook provider whose delivery issued them.
type queryLatencyTracker struct {
	mu      sync.Mutex
	windows map[string]*queryWindow
}

func newQueryLatencyTracker() *queryLatencyTracker {
	return &queryLatencyTracker{windows: make(map[string]*queryWindow)}
}

func (t *queryLatencyTracker) observe(name, provider string, duration time.Duration, failed bool) {
	if t == nil {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "unknown"
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	window, ok := t.windows[name]
	if !ok {
		window = &queryWindow{providers: make(map[string]int)}
		t.windows[name] = window
	}
	window.durations = append(window.durations, duration)
	if len(window.durations) > maxSamplesPerQuery {
		window.durations = window.durations[len(window.durations)-maxSamplesPerQuery:]
	}
	if failed {
		window.errors++
	}
	if provider != "" {
		window.providers[provider]++
	}
}

func (t *queryLatencyTracker) snapshot() []QueryLatency {
	if t == nil {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	stats := make([]QueryLatency, 0, len(t.windows))
	for name, window := range t.windows {
		if len(window.durations) == 0 {
			continue
		}
		sorted := append([]time.Duration(nil), window.durations...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		providers := make(map[string]int, len(window.providers))
		for provider, calls := range window.providers {
			providers[provider] = calls
		}
		stats = append(stats, QueryLatency{
			Name:      name,
			Count:     len(sorted),
			Errors:    window.errors,
			P50:       sorted[(len(sorted)-1)/2],
			P95:       sorted[int(float64(len(sorted)-1)*0.95)],
			Max:       sorted[len(sorted)-1],
			Providers: providers,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].P95 == stats[j].P95 {
			return stats[i].Name < stats[j].Name
		}
		return stats[i].P95 > stats[j].P95
	})
	return stats
}

// instrumentedDBTX traces every sqlc query, records its latency and exports
// a duration histogram tagged with the query and webhook provider.
type instrumentedDBTX struct {
	inner    queries.DBTX
	tracker  *queryLatencyTracker
	duration metric.Float64Histogram
}

func newInstrumentedDBTX(inner queries.DBTX, tracker *queryLatencyTracker) queries.DBTX {
	if tracker == nil {
		return inner
	}
	duration, _ := otel.Meter("github.com/fr0stylo/feedbackgate/internal/db").Float64Histogram(
		observability.MetricDBQueryDuration,
		metric.WithUnit("ms"),
		metric.WithDescription("Duration of sqlc queries issued by the gateway."),
	)
	return &instrumentedDBTX{inner: inner, tracker: tracker, duration: duration}
}

type queryCall struct {
	ctx   context.Context
	name  string
	span  observability.Span
	start time.Time
}

func (d *instrumentedDBTX) begin(ctx context.Context, query, operation string) queryCall {
	name := queryName(query)
	ctx, span := observability.StartDBSpan(ctx, name, operation)
	return queryCall{ctx: ctx, name: name, span: span, start: time.Now()}
}

func (d *instrumentedDBTX) finish(call queryCall, err error) {
	elapsed := time.Since(call.start)
	provider, _ := observability.ProviderFromContext(call.ctx)

	d.tracker.observe(call.name, provider, elapsed, err != nil && err != sql.ErrNoRows)
	if d.duration != nil {
		attrs := []attribute.KeyValue{observability.AttrQueryName.String(call.name)}
		if provider != "" {
			attrs = append(attrs, observability.AttrProvider.String(provider))
		}
		d.duration.Record(call.ctx, float64(elapsed)/float64(time.Millisecond), metric.WithAttributes(attrs...))
	}
	if err != sql.ErrNoRows {
		call.span.RecordError(err)
	}
	call.span.End()
}

func (d *instrumentedDBTX) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	call := d.begin(ctx, query, "exec")
	result, err := d.inner.ExecContext(call.ctx, query, args...)
	d.finish(call, err)
	return result, err
}

func (d *instrumentedDBTX) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	call := d.begin(ctx, query, "prepare")
	stmt, err := d.inner.PrepareContext(call.ctx, query)
	d.finish(call, err)
	return stmt, err
}

func (d *instrumentedDBTX) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	call := d.begin(ctx, query, "query")
	rows, err := d.inner.QueryContext(call.ctx, query, args...)
	d.finish(call, err)
	return rows, err
}

func (d *instrumentedDBTX) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	call := d.begin(ctx, query, "query_row")
	row := d.inner.QueryRowContext(call.ctx, query, args...)
	d.finish(call, row.Err())
	return row
}

// queryName extracts the sqlc query name from the "-- name:" header line.
func queryName(query string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(query), "\n")
	fields := strings.Fields(first)
	if len(fields) < 3 || fields[0] != "--" || fields[1] != "name:" {
		return "unknown"
	}
	return fields[2]
}
