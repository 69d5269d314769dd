package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-wizard/internal/domain"
)

func TestEventTableFor(t *testing.T) {
	table, err := EventTableFor("product")
	require.NoError(t, err)
	assert.Equal(t, TableProductEvents, table)

	table, err = EventTableFor("dc")
	require.NoError(t, err)
	assert.Equal(t, TableDCEvents, table)

	_, err = EventTableFor("stock; DROP TABLE stock")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMigrationsEmbebidas(t *testing.T) {
	script, err := migrationsFS.ReadFile("migrations/002_events.sql")
	require.NoError(t, err)
	assert.Contains(t, string(script), "CREATE TABLE IF NOT EXISTS dc_events")
}

func TestMigrations_ClaveNaturalDeEventos(t *testing.T) {
	script, err := migrationsFS.ReadFile("migrations/003_events_natural_key.sql")
	require.NoError(t, err)
	for _, table := range []string{TableProductEvents, TableDCEvents} {
		assert.Contains(t, string(script), "ON "+table+" (product_id, location_id, loc_type, event_type, reference, occurred_at)")
	}
}
