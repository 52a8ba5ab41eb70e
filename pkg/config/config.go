package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Dataset  DatasetConfig
	Feedback FeedbackConfig
	Currency CurrencyConfig
	Chat     ChatConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatasetConfig struct {
	Path string
}

type FeedbackConfig struct {
	Path string
}

// CurrencyConfig describes the two display currencies. Rate converts an
// amount from the primary into the secondary currency.
type CurrencyConfig struct {
	PrimaryCode     string
	PrimarySymbol   string
	SecondaryCode   string
	SecondarySymbol string
	Rate            decimal.Decimal
}

type ChatConfig struct {
	IntentsPath string
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// If no .env file was found, plain environment variables still apply
	// (useful for Docker/K8s).

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Dataset: DatasetConfig{
			Path: getEnv("DATASET_PATH", "data/transactions.csv"),
		},
		Feedback: FeedbackConfig{
			Path: getEnv("FEEDBACK_PATH", "data/feedback.csv"),
		},
		Currency: CurrencyConfig{
			PrimaryCode:     getEnv("CURRENCY_PRIMARY_CODE", "USD"),
			PrimarySymbol:   getEnv("CURRENCY_PRIMARY_SYMBOL", "$"),
			SecondaryCode:   getEnv("CURRENCY_SECONDARY_CODE", "EUR"),
			SecondarySymbol: getEnv("CURRENCY_SECONDARY_SYMBOL", "€"),
			Rate:            getDecimalEnv("CURRENCY_RATE", "0.92"),
		},
		Chat: ChatConfig{
			IntentsPath: getEnv("CHAT_INTENTS_PATH", "configs/intents.yaml"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDecimalEnv reads a decimal value, falling back to the default when the
// variable is unset or does not parse.
func getDecimalEnv(key, defaultValue string) decimal.Decimal {
	if value, err := decimal.NewFromString(getEnv(key, defaultValue)); err == nil {
		return value
	}
	value, _ := decimal.NewFromString(defaultValue)
	return value
}
