// Package metrics métricas Prometheus de la API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los colectores. Cada instancia tiene su propio registro para que los tests no
// choquen con el registro global.
type Metrics struct {
	registry *prometheus.Registry

	LoginAttempts    *prometheus.CounterVec
	TokensRefreshed  prometheus.Counter
	TokensRevoked    *prometheus.CounterVec
	GateRejections   *prometheus.CounterVec
	APIErrors        *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
}

// New registra los colectores bajo namespace.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		LoginAttempts: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_attempts_total",
				Help:      "Intentos de login por resultado",
			},
			[]string{"outcome"},
		),
		TokensRefreshed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_refreshed_total",
			Help:      "Refresh tokens canjeados",
		}),
		TokensRevoked: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tokens_revoked_total",
				Help:      "Refresh tokens revocados",
			},
			[]string{"reason"},
		),
		GateRejections: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "gate_rejections_total",
				Help:      "Peticiones rechazadas por mantenimiento o suscripción",
			},
			[]string{"gate"},
		),
		APIErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_errors_total",
				Help:      "Respuestas de error por código",
			},
			[]string{"code", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duración de las peticiones HTTP en segundos",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		RequestsInFlight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Peticiones HTTP en curso",
		}),
	}
}

// Handler expone el registro en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry devuelve el registro interno.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordLogin cuenta un intento de login. outcome es "success" o el código de error.
func (m *Metrics) RecordLogin(outcome string) {
	m.LoginAttempts.WithLabelValues(outcome).Inc()
}

// RecordGateRejection cuenta un rechazo de compuerta ("maintenance" o "subscription").
func (m *Metrics) RecordGateRejection(gate string) {
	m.GateRejections.WithLabelValues(gate).Inc()
}

// RecordAPIError cuenta una respuesta de error.
func (m *Metrics) RecordAPIError(code string, status int) {
	m.APIErrors.WithLabelValues(code, strconv.Itoa(status)).Inc()
}

// RecordRequest registra la duración de una petición ya respondida.
func (m *Metrics) RecordRequest(method, route string, status int, elapsed time.Duration) {
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
