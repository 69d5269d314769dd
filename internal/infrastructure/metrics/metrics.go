// Package metrics expone los contadores Prometheus del asistente y de los servicios.
package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AssistantQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_queries_total",
			Help: "Consultas clasificadas por intención",
		},
		[]string{"intent"},
	)

	AssistantReplies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_replies_total",
			Help: "Respuestas del asistente por intención y tipo",
		},
		[]string{"intent", "kind"},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Llamadas a servicios REST por servicio y resultado",
		},
		[]string{"service", "outcome"},
	)

	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_request_duration_seconds",
			Help:    "Duración de las llamadas al modelo de lenguaje",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
		},
		[]string{"provider"},
	)
)

// Resultados de una llamada a un servicio.
const (
	OutcomeOK        = "ok"
	OutcomeHTTPError = "http_error"
	OutcomeTransport = "transport_error"
	OutcomeBadJSON   = "invalid_json"
)

// Recorder implementa assistant.Recorder y ai.DurationObserver sobre los collectors globales.
type Recorder struct{}

// NewRecorder devuelve el recorder de Prometheus.
func NewRecorder() Recorder { return Recorder{} }

func (Recorder) ObserveQuery(intent string) {
	AssistantQueries.WithLabelValues(intent).Inc()
}

func (Recorder) ObserveReply(intent, kind string) {
	AssistantReplies.WithLabelValues(intent, kind).Inc()
}

func (Recorder) ObserveLLM(provider string, d time.Duration) {
	LLMRequestDuration.WithLabelValues(provider).Observe(d.Seconds())
}

// ObserveUpstream cuenta una llamada a un servicio externo.
func ObserveUpstream(service, outcome string) {
	UpstreamRequests.WithLabelValues(service, outcome).Inc()
}

// Handler expone /metrics dentro de fiber.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
