// Package metrics wires padnetotp's counters and timers through
// docker/go-metrics, the same namespace/labeled-timer pattern the
// teacher uses in metrics/prometheus.go and
// registry/storage/cache/metrics/prom.go. init registers Namespace with
// the default Prometheus registry; the module never starts its own HTTP
// exposition server, so exposing that registry is left to the caller.
package metrics

import (
	"github.com/docker/go-metrics"
)

const namespacePrefix = "padnetotp"

var (
	// Namespace groups every metric this module emits.
	Namespace = metrics.NewNamespace(namespacePrefix, "", nil)

	// LinesBuilt counts lines written by padset.Build.
	LinesBuilt = Namespace.NewCounter("build_lines", "number of pad lines written by Build")

	// LinesConsumed counts lines removed by writer-mode consumption.
	LinesConsumed = Namespace.NewCounter("consumed_lines", "number of pad lines consumed (deleted) by writer mode")

	// IntegrityFailures counts validate-and-consume failures, labeled by
	// scope ("page" or "pad").
	IntegrityFailures = Namespace.NewLabeledCounter("integrity_failures", "number of digest validation failures", "scope")

	// XorLatency times writer/reader streaming runs, labeled by mode
	// ("writer" or "reader").
	XorLatency = Namespace.NewLabeledTimer("xor_latency", "latency of a full writer/reader xor stream run", "mode")
)

func init() {
	metrics.Register(Namespace)
}
