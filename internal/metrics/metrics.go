// Package metrics собирает метрики Prometheus для HTTP-слоя и загрузки сид-данных.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector хранит метрики сервиса
type Collector struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	seeded   *prometheus.CounterVec
}

// NewCollector создает Collector и регистрирует метрики в reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "marketplace_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		seeded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_seed_records_total",
			Help: "Records inserted by the startup seed load, by entity.",
		}, []string{"entity"}),
	}

	reg.MustRegister(c.requests, c.latency, c.seeded)
	return c
}

// RecordRequest учитывает один обработанный запрос
func (c *Collector) RecordRequest(method, route string, status int, d time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordSeeded учитывает загруженные сид-записи
func (c *Collector) RecordSeeded(entity string, n int) {
	c.seeded.WithLabelValues(entity).Add(float64(n))
}

// Handler отдает метрики для Prometheus
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
