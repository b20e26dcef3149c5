// Package metrics provides Prometheus instrumentation for gogate.
//
// The manager records every facade operation against the metric registry:
// admission requests and their outcomes per limiter, wait times for leaky
// bucket callers, current queue depth and token counts, and instance
// lifecycle counts (created, destroyed, evicted).
//
// Expose the metrics via HTTP with promhttp:
//
//	http.Handle("/metrics", promhttp.Handler())
//
// Available metrics:
//
//   - gogate_limiter_requests_total{algorithm,name}
//   - gogate_limiter_allowed_total{algorithm,name}
//   - gogate_limiter_denied_total{algorithm,name}
//   - gogate_limiter_wait_duration_seconds{algorithm,name}
//   - gogate_limiter_queue_depth{name}
//   - gogate_limiter_tokens_available{name}
//   - gogate_registry_instances{algorithm}
//   - gogate_registry_created_total
//   - gogate_registry_destroyed_total
//   - gogate_registry_evicted_total
//
// Use a custom Prometheus registry for isolation (recommended in tests):
//
//	reg := prometheus.NewRegistry()
//	m := metrics.NewRegistry(reg)
package metrics
