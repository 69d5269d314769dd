package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-wizard/internal/application/ports"
	"github.com/jhoicas/retail-wizard/internal/infrastructure/metrics"
	"github.com/jhoicas/retail-wizard/pkg/logger"
)

// AssistantDeps dependencias de la API del asistente.
type AssistantDeps struct {
	UseCase     asker
	Report      ports.ReportGenerator
	JWTSecret   string // vacío = sin autenticación
	AllowWrites bool   // solo aplica sin autenticación
}

// Common registra request id, access log, /health y /metrics. Lo usan los tres servicios.
func Common(app *fiber.App, service string, log *logger.Logger) {
	app.Use(RequestID())
	app.Use(AccessLog(log))
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": service})
	})
	app.Get("/metrics", metrics.Handler())
}

// AssistantRouter registra la página y la API del asistente.
func AssistantRouter(app *fiber.App, deps AssistantDeps) {
	policy := WritePolicy{AuthEnabled: deps.JWTSecret != "", AllowWrites: deps.AllowWrites}
	h := NewAssistantHandler(deps.UseCase, deps.Report, policy)

	app.Get("/", h.Index)

	api := app.Group("/api/assistant")
	if policy.AuthEnabled {
		api.Use(AuthMiddleware(deps.JWTSecret))
	}
	api.Post("/query", h.Query)
	api.Post("/report", h.Report)
}

// StockRouter registra los endpoints del servicio de stock on hand.
func StockRouter(app *fiber.App, uc stockService) {
	h := NewStockHandler(uc)
	app.Get("/get_stock", h.GetStock)
	app.Post("/adjust_stock", h.AdjustStock)
	app.Get("/movements", h.ListMovements)
}

// EventsRouter registra los endpoints de un servicio de eventos.
// Con jwtSecret, la ingesta exige rol admin u operator; la lectura queda abierta.
func EventsRouter(app *fiber.App, uc eventsService, jwtSecret string) {
	h := NewEventsHandler(uc)
	app.Get("/events", h.List)
	if jwtSecret == "" {
		app.Post("/events", h.Create)
		return
	}
	app.Post("/events", AuthMiddleware(jwtSecret), RequireRole(writerRoles...), h.Create)
}
