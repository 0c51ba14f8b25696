package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	PlaybackEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playback_events_total",
			Help: "Playback guard events by type and outcome",
		},
		[]string{"event", "outcome"},
	)

	SeekRejections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "playback_seek_rejections_total",
			Help: "Forward seeks snapped back to the furthest watched position",
		},
	)

	RestrictedResets = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "playback_restricted_resets_total",
			Help: "Hard resets triggered by the learner returning to a hidden tab",
		},
	)

	PlaybackFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playback_failures_total",
			Help: "Media load or play failures reported by clients",
		},
		[]string{"kind"},
	)

	Completions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "progress_completions_total",
			Help: "Completion transitions by kind (video, quiz, course)",
		},
		[]string{"kind"},
	)

	CertificatesIssued = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "certificates_issued_total",
			Help: "Certificates issued (first successful name submission only)",
		},
	)

	StorageFaults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "progress_storage_faults_total",
			Help: "Recovered progress store faults by operation",
		},
		[]string{"op"},
	)

	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "playback_sessions_active",
			Help: "Open playback sessions",
		},
	)

	initOnce sync.Once
)

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			PlaybackEvents,
			SeekRejections,
			RestrictedResets,
			PlaybackFailures,
			Completions,
			CertificatesIssued,
			StorageFaults,
			ActiveSessions,
		)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
