// Package metric provides Prometheus metrics for stripelist tooling.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: Registry with operation counters and latency
//     histograms, plus the /metrics HTTP handler
//   - collector.go: Collector exporting the layout of a live list
//
// Metrics include:
//
//   - stripelist_ops_total{op,result}
//   - stripelist_op_duration_seconds{op}
//   - stripelist_capacity, stripelist_len, stripelist_stripes
//   - stripelist_growths_total
package metric
