package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	History  HistoryConfig
	LLM      LLMConfig
	Schemes  SchemesConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type ServerConfig struct {
	Port         string        `env:"PORT" envDefault:"5000"`
	Debug        string        `env:"DEBUG" envDefault:"False"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"120s"`
	AllowOrigins string        `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
	StaticDir    string        `env:"STATIC_DIR"`
}

// IsDebug reports whether DEBUG is set to "true" in any letter case.
// Any other value, including "1", leaves debug mode off.
func (c ServerConfig) IsDebug() bool {
	return strings.EqualFold(strings.TrimSpace(c.Debug), "true")
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"DB_NAME" envDefault:"legal_buddy"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// DSN returns the libpq-style connection string understood by pgx.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

type HistoryConfig struct {
	Driver     string `env:"HISTORY_DRIVER" envDefault:"sqlite"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"chat_history.db"`
	BadgerPath string `env:"BADGER_PATH" envDefault:"data/history"`
}

type SchemesConfig struct {
	File string `env:"SCHEMES_FILE" envDefault:"schemes.json"`
}

type LLMConfig struct {
	Provider string `env:"AI_PROVIDER" envDefault:"gemini"`
	Gemini   GeminiConfig
	GigaChat GigaChatConfig
	Groq     GroqConfig
}

type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
}

type GigaChatConfig struct {
	APIKey             string `env:"GIGACHAT_API_KEY"`
	Scope              string `env:"GIGACHAT_SCOPE" envDefault:"GIGACHAT_API_PERS"`
	Model              string `env:"GIGACHAT_MODEL" envDefault:"GigaChat"`
	InsecureSkipVerify bool   `env:"GIGACHAT_INSECURE_SKIP_VERIFY" envDefault:"true"`
}

type GroqConfig struct {
	APIKey  string `env:"GROQ_API_KEY"`
	Model   string `env:"GROQ_MODEL" envDefault:"llama-3.3-70b-versatile"`
	BaseURL string `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work the same way (Docker/K8s)
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	cfg.History.Driver = strings.ToLower(strings.TrimSpace(cfg.History.Driver))

	if cfg.Server.IsDebug() {
		cfg.Logger.Level = "debug"
	}

	return cfg, nil
}
