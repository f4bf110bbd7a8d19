package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Notification delivery metrics
	NotificationsSent = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "startickets_notifications_sent_total",
		Help: "Total number of notifications handed to the mail transport successfully",
	}, []string{"kind", "provider"})
	NotificationsFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "startickets_notifications_failed_total",
		Help: "Total number of notifications whose delivery failed",
	}, []string{"kind", "provider"})

	// Access gate decisions, labelled by required role and outcome (allowed/denied)
	AccessDecisions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "startickets_access_decisions_total",
		Help: "Total number of role gate decisions",
	}, []string{"role", "decision"})

	RateLimited = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "startickets_rate_limited_total",
		Help: "Total number of requests rejected by the rate limiter",
	})
)

func init() {
	prometheus.MustRegister(NotificationsSent)
	prometheus.MustRegister(NotificationsFailed)
	prometheus.MustRegister(AccessDecisions)
	prometheus.MustRegister(RateLimited)
}

// Handler returns an http.Handler exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
