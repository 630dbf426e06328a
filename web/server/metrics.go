package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	renderJobsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "render_jobs_active",
		Help: "The number of render jobs currently running.",
	})

	renderJobsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "render_jobs_total",
		Help: "The total number of render jobs started.",
	})

	renderJobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "render_job_duration_seconds",
		Help:    "Wall-clock duration of completed render jobs.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	})

	wsSendErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ws_send_errors_total",
		Help: "The errors that occurred while sending progress updates.",
	})
)

func instrumentJobStarted() {
	renderJobsTotal.Inc()
	renderJobsActive.Inc()
}

func instrumentJobFinished(d time.Duration) {
	renderJobsActive.Dec()
	renderJobDuration.Observe(d.Seconds())
}

func instrumentSendError() {
	wsSendErrors.Inc()
}
