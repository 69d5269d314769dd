package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	AI        AIConfig
	Services  ServicesConfig
	Assistant AssistantConfig
	Events    EventsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string `validate:"oneof=development staging production test"`
	Name     string `validate:"required"`
	LogLevel string `validate:"oneof=trace debug info warn error"`
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT. Secret vacío desactiva la autenticación del asistente.
type JWTConfig struct {
	Secret     string
	Expiration int `validate:"min=1"` // minutos
	Issuer     string
}

// Enabled indica si las rutas del asistente exigen Bearer token.
func (c JWTConfig) Enabled() bool { return c.Secret != "" }

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int `validate:"min=1,max=65535"`
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AIConfig proveedor de lenguaje usado para clasificar y resumir.
type AIConfig struct {
	Provider        string  `validate:"oneof=openai anthropic gemini"`
	Temperature     float64 `validate:"min=0,max=2"`
	TimeoutSeconds  int     `validate:"min=1"`
	OpenAIAPIKey    string
	OpenAIModel     string `validate:"required"`
	OpenAIBaseURL   string `validate:"omitempty,url"`
	AnthropicAPIKey string
	AnthropicModel  string `validate:"required"`
	AnthropicURL    string `validate:"omitempty,url"`
	GeminiAPIKey    string
	GeminiModel     string `validate:"required"`
	GeminiURL       string `validate:"omitempty,url"`
}

// ServicesConfig URLs base de los servicios REST de stock y eventos.
type ServicesConfig struct {
	ProductEventsURL string `validate:"required,url"`
	DCEventsURL      string `validate:"required,url"`
	SOHURL           string `validate:"required,url"`
	TimeoutSeconds   int    `validate:"min=1"`
}

// AssistantConfig ajustes del pipeline del asistente.
type AssistantConfig struct {
	PromptsFile string // YAML opcional con los textos de los prompts
	AllowWrites bool   // sin JWT, permite set_stock a cualquier usuario
}

// EventsConfig ajustes del servicio de eventos (cmd/events-api).
type EventsConfig struct {
	Source string `validate:"oneof=product dc"`
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Devuelve error si algún valor no pasa la validación.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "retail-wizard"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "retail_wizard"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "retail-wizard"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		AI: AIConfig{
			Provider:        strings.ToLower(getString(v, "AI_PROVIDER", "openai")),
			Temperature:     getFloat(v, "AI_TEMPERATURE", 0),
			TimeoutSeconds:  getInt(v, "AI_TIMEOUT_SECONDS", 60),
			OpenAIAPIKey:    getString(v, "OPENAI_API_KEY", ""),
			OpenAIModel:     getString(v, "OPENAI_MODEL", "gpt-4o"),
			OpenAIBaseURL:   getString(v, "OPENAI_BASE_URL", ""),
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
			AnthropicURL:    getString(v, "ANTHROPIC_BASE_URL", ""),
			GeminiAPIKey:    getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:     getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
			GeminiURL:       getString(v, "GEMINI_BASE_URL", ""),
		},
		Services: ServicesConfig{
			ProductEventsURL: getString(v, "PRODUCT_EVENTS_API_URL", "http://product_events_api:8000"),
			DCEventsURL:      getString(v, "DC_EVENTS_API_URL", "http://dc_events_api:8001"),
			SOHURL:           getString(v, "SOH_API_URL", "http://set_stock_on_hand:8002"),
			TimeoutSeconds:   getInt(v, "SERVICES_TIMEOUT_SECONDS", 15),
		},
		Assistant: AssistantConfig{
			PromptsFile: getString(v, "ASSISTANT_PROMPTS_FILE", ""),
			AllowWrites: getBool(v, "ASSISTANT_ALLOW_WRITES", true),
		},
		Events: EventsConfig{
			Source: strings.ToLower(getString(v, "EVENTS_SOURCE", "product")),
		},
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuración inválida: %w", err)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
		if err != nil {
			return def
		}
		return f
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
