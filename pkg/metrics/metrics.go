// Package metrics expone los contadores e histogramas Prometheus de la aplicación.
// Se registran con promauto en el registry global; el endpoint /metrics los sirve
// vía promhttp (ver cmd/api).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timesheet_pro"

var (
	// HTTPRequestsTotal total de peticiones HTTP por método, ruta y status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de peticiones HTTP",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration duración de peticiones HTTP en segundos.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP en segundos",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// AuthFailuresTotal fallos de autenticación/autorización por motivo.
	AuthFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_failures_total",
			Help:      "Total de fallos de autenticación y autorización",
		},
		[]string{"reason"},
	)

	// TimesheetTransitionsTotal transiciones del ciclo de vida de timesheets.
	TimesheetTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "timesheet_transitions_total",
			Help:      "Total de transiciones de estado de timesheets",
		},
		[]string{"transition"},
	)

	// TenantResolutionsTotal resoluciones de tenant por origen (header, domain, subdomain, none).
	TenantResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tenant_resolutions_total",
			Help:      "Total de resoluciones de tenant por origen",
		},
		[]string{"source"},
	)
)

// RecordAuthFailure incrementa el contador de fallos de auth.
func RecordAuthFailure(reason string) {
	AuthFailuresTotal.WithLabelValues(reason).Inc()
}

// RecordTransition incrementa el contador de transiciones de timesheet.
func RecordTransition(transition string) {
	TimesheetTransitionsTotal.WithLabelValues(transition).Inc()
}
