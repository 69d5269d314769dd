package assistant_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-wizard/internal/application/assistant"
)

func TestLoadPrompts_SinArchivo(t *testing.T) {
	p, err := assistant.LoadPrompts("")
	require.NoError(t, err)
	assert.Equal(t, assistant.DefaultPrompts(), p)
	assert.Contains(t, p.Classifier, "get_stock")
	assert.Contains(t, p.Classifier, "analyze_location_type")
}

func TestLoadPrompts_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	content := `
compare_events: "Compare both feeds."
dc_events_label: "Warehouse Data"
classifier: "   "
intent_aliases:
  stock_check: get_stock
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	p, err := assistant.LoadPrompts(path)
	require.NoError(t, err)

	def := assistant.DefaultPrompts()
	assert.Equal(t, "Compare both feeds.", p.Compare)
	assert.Equal(t, "Warehouse Data", p.DCEventsLabel)
	assert.Equal(t, def.Classifier, p.Classifier, "clave en blanco conserva el valor por defecto")
	assert.Equal(t, def.AnalyzeLocation, p.AnalyzeLocation)
	assert.Equal(t, map[string]string{"stock_check": "get_stock"}, p.IntentAliases)
}

func TestLoadPrompts_ArchivoInexistente(t *testing.T) {
	_, err := assistant.LoadPrompts(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadPrompts_YAMLInvalido(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("compare_events: [unclosed"), 0o600))
	_, err := assistant.LoadPrompts(path)
	assert.Error(t, err)
}
