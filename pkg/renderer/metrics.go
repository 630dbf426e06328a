package renderer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	renderPixelsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "render_pixels_total",
		Help: "The number of pixels rendered.",
	})

	renderSamplesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "render_samples_total",
		Help: "The number of per-pixel samples traced.",
	})

	renderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "render_duration_seconds",
		Help:    "Wall-clock duration of full render passes.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	})
)

func instrumentRowRendered(pixels, samplesPerPixel int) {
	renderPixelsTotal.Add(float64(pixels))
	renderSamplesTotal.Add(float64(pixels * samplesPerPixel))
}

func instrumentRenderDuration(d time.Duration) {
	renderDuration.Observe(d.Seconds())
}
