// Package metrics exposes lifecycle and HTTP counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campaign-desk/internal/core/domain"
)

const namespace = "campaign_desk"

// Collector implements port.Metrics on Prometheus counters registered on an
// injected registry.
type Collector struct {
	campaignsCreated  prometheus.Counter
	statusChanges     *prometheus.CounterVec
	adCopyGenerated   *prometheus.CounterVec
	loginAttempts     *prometheus.CounterVec
	analyticsRequests prometheus.Counter
	httpStatus        *prometheus.CounterVec
	httpLatency       prometheus.Histogram
}

// NewCollector creates the collector and registers every metric on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		campaignsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaigns_created_total",
			Help:      "Campaigns stored after validation.",
		}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaign_status_changes_total",
			Help:      "Review decisions that changed a campaign status.",
		}, []string{"status"}),
		adCopyGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ad_copy_generated_total",
			Help:      "Generated ad copy by source.",
		}, []string{"source"}),
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		analyticsRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analytics_snapshots_total",
			Help:      "Synthesized analytics snapshots.",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_responses_total",
			Help:      "HTTP responses by status code.",
		}, []string{"status_code"}),
		httpLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.campaignsCreated,
		c.statusChanges,
		c.adCopyGenerated,
		c.loginAttempts,
		c.analyticsRequests,
		c.httpStatus,
		c.httpLatency,
	)
	return c
}

func (c *Collector) CampaignCreated() {
	c.campaignsCreated.Inc()
}

func (c *Collector) CampaignStatusChanged(status domain.Status) {
	c.statusChanges.WithLabelValues(string(status)).Inc()
}

func (c *Collector) AdCopyGenerated(source domain.AdCopySource) {
	c.adCopyGenerated.WithLabelValues(string(source)).Inc()
}

func (c *Collector) LoginAttempt(success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	c.loginAttempts.WithLabelValues(outcome).Inc()
}

func (c *Collector) AnalyticsSynthesized() {
	c.analyticsRequests.Inc()
}

// RecordHTTP records one served request.
func (c *Collector) RecordHTTP(statusCode int, duration time.Duration) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
	c.httpLatency.Observe(duration.Seconds())
}

// Handler returns the Prometheus scrape handler.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
