package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/retail-wizard/internal/application/events"
	"github.com/jhoicas/retail-wizard/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/retail-wizard/internal/interfaces/http"
	"github.com/jhoicas/retail-wizard/pkg/config"
	"github.com/jhoicas/retail-wizard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	table, err := postgres.EventTableFor(cfg.Events.Source)
	if err != nil {
		log.Fatal().Err(err).Msg("EVENTS_SOURCE")
	}
	service := cfg.Events.Source + "-events"
	log.Info().Str("env", cfg.App.Env).Str("table", table).Msg("iniciando servicio de eventos")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	eventsUC := events.NewUseCase(postgres.NewEventRepository(pool, table))

	app := fiber.New(fiber.Config{
		AppName:      service,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Common(app, service, log)
	httpRouter.EventsRouter(app, eventsUC, cfg.JWT.Secret)

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
}
