// Package metrics collects Prometheus metrics for HTTP traffic and signing
// activity, exposed through the /metrics endpoint.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registers and records the service's Prometheus metrics.
type Collector struct {
	registry *prometheus.Registry

	httpResponses *prometheus.CounterVec
	httpLatency   prometheus.Histogram

	documentsSent      prometheus.Counter
	signersSigned      prometheus.Counter
	signersDeclined    prometheus.Counter
	documentsCompleted prometheus.Counter
	documentsDeclined  prometheus.Counter
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpResponses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quillsign_http_responses_total",
			Help: "HTTP responses by status code.",
		}, []string{"status"}),
		httpLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "quillsign_http_latency_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		documentsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quillsign_documents_sent_total",
			Help: "Documents dispatched for signing.",
		}),
		signersSigned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quillsign_signers_signed_total",
			Help: "Signer submissions accepted.",
		}),
		signersDeclined: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quillsign_signers_declined_total",
			Help: "Signer declines recorded.",
		}),
		documentsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quillsign_documents_completed_total",
			Help: "Documents that reached completed status.",
		}),
		documentsDeclined: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quillsign_documents_declined_total",
			Help: "Documents that reached declined status.",
		}),
	}

	c.registry.MustRegister(
		c.httpResponses,
		c.httpLatency,
		c.documentsSent,
		c.signersSigned,
		c.signersDeclined,
		c.documentsCompleted,
		c.documentsDeclined,
	)

	return c
}

// Handler returns the HTTP handler serving the metrics endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordHTTPResponse records a completed HTTP response.
func (c *Collector) RecordHTTPResponse(status int, duration time.Duration) {
	c.httpResponses.WithLabelValues(strconv.Itoa(status)).Inc()
	c.httpLatency.Observe(duration.Seconds())
}

// RecordDocumentSent records a document dispatched for signing.
func (c *Collector) RecordDocumentSent() {
	c.documentsSent.Inc()
}

// RecordSignerSigned records an accepted signer submission.
func (c *Collector) RecordSignerSigned() {
	c.signersSigned.Inc()
}

// RecordSignerDeclined records a signer decline.
func (c *Collector) RecordSignerDeclined() {
	c.signersDeclined.Inc()
}

// RecordDocumentDeclined records a document reaching declined status.
func (c *Collector) RecordDocumentDeclined() {
	c.documentsDeclined.Inc()
}

// RecordDocumentCompleted records a document reaching completed status.
func (c *Collector) RecordDocumentCompleted() {
	c.documentsCompleted.Inc()
}
