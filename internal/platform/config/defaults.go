package config

// defaults returns the base configuration values applied before any
// file or environment layer.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          8080,
		"server.read_timeout":  "10s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "60s",

		"log.level":  "info",
		"log.format": "json",

		"journal.batch_workers": 4,

		"relay.timeout":                         "5s",
		"relay.retry.max_attempts":              3,
		"relay.retry.initial_interval":          "100ms",
		"relay.retry.max_interval":              "2s",
		"relay.retry.multiplier":                2.0,
		"relay.circuit_breaker.max_failures":    5,
		"relay.circuit_breaker.timeout":         "30s",
		"relay.circuit_breaker.half_open_limit": 2,
		"relay.rate_limit.requests_per_second":  50.0,
		"relay.rate_limit.burst_size":           10,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.service_name": "scribed",
	}
}
