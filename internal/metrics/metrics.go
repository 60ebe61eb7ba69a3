package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "accountpe_request_duration_seconds",
			Help:    "Duration of calls made to the AccountPe API",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"code", "method"},
	)
	CheckoutOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_outcomes_total",
			Help: "Checkout runs by final state and result",
		},
		[]string{"state", "result"},
	)
)

func NormalizePath(p string) string {
	p = strings.TrimPrefix(p, "/")
	if idx := strings.Index(p, "/"); idx >= 0 {
		p = p[:idx]
	}
	if p == "" {
		return "root"
	}
	return p
}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		duration := time.Since(start).Seconds()

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		path := NormalizePath(r.URL.Path)
		RequestTotal.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
		RequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

// InstrumentClient records the duration of every outgoing gateway call.
func InstrumentClient(c *http.Client) *http.Client {
	next := c.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	instrumented := *c
	instrumented.Transport = promhttp.InstrumentRoundTripperDuration(GatewayRequestDuration, next)
	return &instrumented
}

func Handler() http.Handler {
	return promhttp.Handler()
}
