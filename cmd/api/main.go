package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/retail-wizard/internal/application/assistant"
	infraai "github.com/jhoicas/retail-wizard/internal/infrastructure/ai"
	"github.com/jhoicas/retail-wizard/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/retail-wizard/internal/infrastructure/pdf"
	"github.com/jhoicas/retail-wizard/internal/infrastructure/services"
	httpRouter "github.com/jhoicas/retail-wizard/internal/interfaces/http"
	"github.com/jhoicas/retail-wizard/pkg/config"
	"github.com/jhoicas/retail-wizard/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("ai_provider", cfg.AI.Provider).
		Bool("auth", cfg.JWT.Enabled()).
		Msg("iniciando asistente")

	prompts, err := assistant.LoadPrompts(cfg.Assistant.PromptsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Assistant.PromptsFile).Msg("perfil de prompts")
	}

	recorder := metrics.NewRecorder()
	llm, err := infraai.NewLLMService(cfg.AI, recorder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("proveedor de lenguaje")
	}

	svcTimeout := time.Duration(cfg.Services.TimeoutSeconds) * time.Second
	stockClient := services.NewStockClient(cfg.Services.SOHURL, svcTimeout)
	productEvents := services.NewProductEventsClient(cfg.Services.ProductEventsURL, svcTimeout)
	dcEvents := services.NewDCEventsClient(cfg.Services.DCEventsURL, svcTimeout)

	classifier := assistant.NewClassifier(llm, prompts, log.Named("classifier"))
	dispatcher := assistant.NewDispatcher(
		stockClient, productEvents, dcEvents,
		assistant.NewSummarizer(llm), prompts, log.Named("dispatcher"),
	)
	askUC := assistant.NewUseCase(
		classifier, dispatcher, recorder,
		time.Duration(cfg.AI.TimeoutSeconds)*time.Second, log.Named("assistant"),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Duration(cfg.AI.TimeoutSeconds+10) * time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Retail Wizard API",
		}))
	}

	httpRouter.Common(app, cfg.App.Name, log)
	httpRouter.AssistantRouter(app, httpRouter.AssistantDeps{
		UseCase:     askUC,
		Report:      infrapdf.NewMarotoReportGenerator(),
		JWTSecret:   cfg.JWT.Secret,
		AllowWrites: cfg.Assistant.AllowWrites,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
