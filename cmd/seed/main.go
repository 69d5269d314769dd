// seed carga stock inicial y eventos de ejemplo en PostgreSQL.
//
// Uso: go run ./cmd/seed [-charset iso-8859-1] seed.json
// Formato:
//
//	{
//	  "stock":          [{"product_id": 30000913, "location": 3, "soh": 42}],
//	  "product_events": [{"product_id": 30000913, "location_id": 1234, "loc_type": "S", "event_type": "SALE", "quantity": 2, "occurred_at": "2026-03-01T10:00:00Z"}],
//	  "dc_events":      [{"product_id": 30000913, "location_id": 3, "loc_type": "W", "event_type": "SHIP", "quantity": 24, "occurred_at": "2026-02-27T08:00:00Z"}]
//	}
//
// Los exportes de algunos POS vienen en Latin-1; -charset los convierte a UTF-8.
// Los eventos ya cargados (misma clave natural) se omiten, así que el seed se puede repetir.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/retail-wizard/internal/application/dto"
	"github.com/jhoicas/retail-wizard/internal/application/events"
	"github.com/jhoicas/retail-wizard/internal/application/stock"
	"github.com/jhoicas/retail-wizard/internal/domain"
	"github.com/jhoicas/retail-wizard/internal/infrastructure/postgres"
	"github.com/jhoicas/retail-wizard/pkg/config"
	"github.com/jhoicas/retail-wizard/pkg/logger"
)

const seedUser = "seed"

func main() {
	charset := flag.String("charset", "utf-8", "codificación del archivo (utf-8 | iso-8859-1 | windows-1252)")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: seed [-charset iso-8859-1] <archivo.json>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir archivo")
	}
	defer f.Close()

	data, err := decodeSeed(f, *charset)
	if err != nil {
		log.Fatal().Err(err).Msg("leer seed")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	stockUC := stock.NewUseCase(
		postgres.NewStockRepository(pool),
		postgres.NewInventoryMovementRepository(pool),
		postgres.NewTxRunner(pool),
	)
	for i, row := range data.Stock {
		if _, err := stockUC.AdjustStock(ctx, row, seedUser); err != nil {
			log.Fatal().Err(err).Int("row", i).Msg("stock")
		}
	}

	sources := []struct {
		table string
		rows  []dto.CreateEventRequest
	}{
		{postgres.TableProductEvents, data.ProductEvents},
		{postgres.TableDCEvents, data.DCEvents},
	}
	for _, src := range sources {
		uc := events.NewUseCase(postgres.NewEventRepository(pool, src.table))
		skipped := 0
		for i, ev := range src.rows {
			if _, err := uc.Create(ctx, ev); err != nil {
				if errors.Is(err, domain.ErrConflict) {
					skipped++
					continue
				}
				log.Fatal().Err(err).Str("table", src.table).Int("row", i).Msg("evento")
			}
		}
		log.Info().Str("table", src.table).Int("rows", len(src.rows)).Int("skipped", skipped).Msg("eventos cargados")
	}

	log.Info().Int("stock", len(data.Stock)).Msg("seed completado")
}
