package assistant

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// PromptProfile textos de instrucción del pipeline. Las variantes del asistente
// difieren solo en esta configuración, no en el código.
type PromptProfile struct {
	Classifier          string            `yaml:"classifier"`
	Compare             string            `yaml:"compare_events"`
	AnalyzeLocation     string            `yaml:"analyze_location"`
	AnalyzeLocationType string            `yaml:"analyze_location_type"`
	ProductEventsLabel  string            `yaml:"product_events_label"`
	DCEventsLabel       string            `yaml:"dc_events_label"`
	EventsLabel         string            `yaml:"events_label"`
	IntentAliases       map[string]string `yaml:"intent_aliases"`
}

const defaultClassifierPrompt = "You are an expert intent classifier and extractor. " +
	"Respond with exactly one JSON object, and nothing else.\n\n" +
	"Extract:\n" +
	"- store_number: 4-digit or null\n" +
	"- dc_number: 1-2 digit or null\n" +
	"- sku_number: 9-digit or null\n" +
	"- soh: integer or null (for set_stock)\n" +
	"- location_type: 'S' (store) or 'W' (warehouse/DC) or null\n" +
	"Identify intent (one of): get_stock, set_stock, compare_events, " +
	"analyze_location (events for one store or DC), " +
	"analyze_location_type (events for all stores or all DCs)\n\n" +
	"Reply in JSON like this:\n" +
	"{" +
	"\"intent\": <intent>," +
	"\"store_number\": <string|null>," +
	"\"dc_number\": <string|null>," +
	"\"sku_number\": <string|null>," +
	"\"soh\": <integer|null>," +
	"\"location_type\": <\"S\"|\"W\"|null>," +
	"\"reasoning\": <short explanation>" +
	"}"

// DefaultPrompts devuelve el perfil incorporado.
func DefaultPrompts() PromptProfile {
	return PromptProfile{
		Classifier: defaultClassifierPrompt,
		Compare: "You are a data assistant that analyzes retail events. " +
			"Compare and summarize key differences, especially missing or conflicting events.",
		AnalyzeLocation: "You are a retail assistant that analyzes events for a specific location. " +
			"Display the events in a table. " +
			"Give a brief summary of events.",
		AnalyzeLocationType: "You are a retail assistant that analyzes events for a location type.",
		ProductEventsLabel:  "Inventory Data",
		DCEventsLabel:       "DC Data",
		EventsLabel:         "Event Data",
	}
}

// LoadPrompts parte del perfil por defecto y aplica el YAML de path; path vacío
// devuelve el perfil por defecto. Claves vacías o ausentes conservan el valor por defecto.
func LoadPrompts(path string) (PromptProfile, error) {
	p := DefaultPrompts()
	if strings.TrimSpace(path) == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("leer prompts %s: %w", path, err)
	}
	var override PromptProfile
	if err := yaml.Unmarshal(data, &override); err != nil {
		return p, fmt.Errorf("parsear prompts %s: %w", path, err)
	}
	p.merge(override)
	return p, nil
}

func (p *PromptProfile) merge(o PromptProfile) {
	set := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	set(&p.Classifier, o.Classifier)
	set(&p.Compare, o.Compare)
	set(&p.AnalyzeLocation, o.AnalyzeLocation)
	set(&p.AnalyzeLocationType, o.AnalyzeLocationType)
	set(&p.ProductEventsLabel, o.ProductEventsLabel)
	set(&p.DCEventsLabel, o.DCEventsLabel)
	set(&p.EventsLabel, o.EventsLabel)
	if len(o.IntentAliases) > 0 {
		p.IntentAliases = o.IntentAliases
	}
}
