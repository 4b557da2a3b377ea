// Package metrics expone las métricas Prometheus del API (HTTP y libro de inventario).
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jhoicas/Hospital-api/internal/application/inventory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hnsm"

var _ inventory.Metrics = (*Metrics)(nil)

// Metrics agrupa los colectores sobre un registro propio (no el global).
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	movements         *prometheus.CounterVec
	movementsRejected *prometheus.CounterVec
	lowStock          prometheus.Counter
}

// New registra todos los colectores, incluidos los de runtime Go y proceso.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "http", Name: "requests_total",
			Help: "Peticiones HTTP por método, ruta y código.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "http", Name: "request_duration_seconds",
			Help:    "Latencia de las peticiones HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		movements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "inventory", Name: "movements_total",
			Help: "Movimientos de inventario registrados por tipo.",
		}, []string{"type"}),
		movementsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "inventory", Name: "movements_rejected_total",
			Help: "Movimientos rechazados por motivo.",
		}, []string{"reason"}),
		lowStock: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "inventory", Name: "low_stock_events_total",
			Help: "Movimientos que dejaron un artículo en stock bajo.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests, m.httpDuration,
		m.movements, m.movementsRejected, m.lowStock,
	)
	return m
}

// Handler sirve /metrics en formato de exposición Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry para tests y colectores adicionales.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveHTTP registra una petición. route es la plantilla (/api/patients/:id), no la URL real.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) MovementRecorded(movementType string) {
	m.movements.WithLabelValues(movementType).Inc()
}

func (m *Metrics) MovementRejected(reason string) {
	m.movementsRejected.WithLabelValues(reason).Inc()
}

// LowStockReached sin etiqueta por artículo para no disparar la cardinalidad.
func (m *Metrics) LowStockReached(string) {
	m.lowStock.Inc()
}
