// Package metrics collects Prometheus metrics for the API and exposes them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics surface used by the service layer.
type Recorder interface {
	RecordRegistration()
	RecordLogin(success bool)
	RecordRecipeCreated()
	RecordRecipeDeleted()
}

// Collector records Prometheus metrics.
type Collector struct {
	requests       *prometheus.CounterVec
	latency        *prometheus.HistogramVec
	registrations  prometheus.Counter
	logins         *prometheus.CounterVec
	recipesCreated prometheus.Counter
	recipesDeleted prometheus.Counter
}

var _ Recorder = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "recipeshare_http_requests_total",
			Help: "HTTP responses by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "recipeshare_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "recipeshare_registrations_total",
			Help: "Successful user registrations.",
		}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "recipeshare_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		recipesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "recipeshare_recipes_created_total",
			Help: "Recipes submitted.",
		}),
		recipesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "recipeshare_recipes_deleted_total",
			Help: "Recipes deleted by their owners.",
		}),
	}

	reg.MustRegister(
		c.requests,
		c.latency,
		c.registrations,
		c.logins,
		c.recipesCreated,
		c.recipesDeleted,
	)

	return c
}

// RecordRegistration counts a new account.
func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

// RecordLogin counts a login attempt.
func (c *Collector) RecordLogin(success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	c.logins.WithLabelValues(outcome).Inc()
}

// RecordRecipeCreated counts a submitted recipe.
func (c *Collector) RecordRecipeCreated() {
	c.recipesCreated.Inc()
}

// RecordRecipeDeleted counts a deleted recipe.
func (c *Collector) RecordRecipeDeleted() {
	c.recipesDeleted.Inc()
}

// Middleware records status and latency of every request, keyed by the
// matched route pattern rather than the raw path.
func (c *Collector) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			status := ctx.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else if !ctx.Response().Committed {
					status = http.StatusInternalServerError
				}
			}

			route := ctx.Path()
			if route == "" {
				route = "unmatched"
			}
			method := ctx.Request().Method
			c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			c.latency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Noop discards every measurement.
type Noop struct{}

func (Noop) RecordRegistration()  {}
func (Noop) RecordLogin(bool)     {}
func (Noop) RecordRecipeCreated() {}
func (Noop) RecordRecipeDeleted() {}
