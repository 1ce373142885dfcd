package db

import "time"

// QueryLatency is the recent latency distribution of one sqlc query.
// Providers counts calls made while handling a delivery from each webhook
// provider.
type QueryLatency struct {
	Name      string
	Count     int
	Errors    int
	P50       time.Duration
	P95       time.Duration
	Max       time.Duration
	Providers map[string]int
}

// QueryLatencyStats returns per-query latency samples, slowest p95 first.
func (c *Database) QueryLatencyStats() []QueryLatency {
	if c == nil || c.tracker == nil {
		return nil
	}
	return c.tracker.snapshot()
}

// SlowestQueries returns at most limit entries of QueryLatencyStats.
func (c *Database) SlowestQueries(limit int) []QueryLatency {
	stats := c.QueryLatencyStats()
	if limit >= 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}
