package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/Vinoteca-api/internal/domain"
)

// Metrics contadores Prometheus de la API. Se registran una vez en el registry
// por defecto y se exponen en /metrics vía promhttp.
type Metrics struct {
	movementsTotal *prometheus.CounterVec
	loginsTotal    *prometheus.CounterVec
}

// NewMetrics crea y registra los contadores.
func NewMetrics() *Metrics {
	m := &Metrics{
		movementsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vinoteca_movements_total",
			Help: "Traslados de stock por resultado.",
		}, []string{"result"}),
		loginsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vinoteca_logins_total",
			Help: "Emisiones de token por resultado.",
		}, []string{"result"}),
	}
	prometheus.MustRegister(m.movementsTotal, m.loginsTotal)
	return m
}

// MovementCompleted registra un traslado confirmado.
func (m *Metrics) MovementCompleted() {
	if m == nil {
		return
	}
	m.movementsTotal.WithLabelValues("ok").Inc()
}

// MovementRejected registra un traslado rechazado, etiquetado por causa.
func (m *Metrics) MovementRejected(err error) {
	if m == nil {
		return
	}
	m.movementsTotal.WithLabelValues(movementResult(err)).Inc()
}

func movementResult(err error) string {
	switch err {
	case domain.ErrInsufficientStock:
		return "insufficient_stock"
	case domain.ErrInvalidQuantity, domain.ErrSameBranch:
		return "invalid_input"
	case domain.ErrUserNotFound, domain.ErrProductNotFound,
		domain.ErrOriginBranchNotFound, domain.ErrDestinationBranchNotFound:
		return "not_found"
	}
	return "error"
}

// LoginOK registra una emisión de token exitosa.
func (m *Metrics) LoginOK() {
	if m == nil {
		return
	}
	m.loginsTotal.WithLabelValues("ok").Inc()
}

// LoginFailed registra una emisión de token rechazada.
func (m *Metrics) LoginFailed() {
	if m == nil {
		return
	}
	m.loginsTotal.WithLabelValues("failed").Inc()
}
