package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Broker Config
	BrokerURL          string `env:"BROKER_URL" envDefault:"nats://localhost:4222"`
	BrokerUser         string `env:"BROKER_USER"`
	BrokerPass         string `env:"BROKER_PASSWORD"`
	BrokerTopicPattern string `env:"BROKER_TOPIC_PATTERN" envDefault:"crisis.events.>"`
	CommandsEnabled    bool   `env:"COMMANDS_ENABLED" envDefault:"true"`

	// Simulator Config
	SimulatorEnabled  bool          `env:"SIMULATOR_ENABLED" envDefault:"false"`
	SimulatorInterval time.Duration `env:"SIMULATOR_INTERVAL" envDefault:"1200ms"`

	// State Config
	MaxEvents    int           `env:"MAX_EVENTS" envDefault:"500"`
	RecentWindow time.Duration `env:"RECENT_WINDOW" envDefault:"2400ms"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"500ms"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// minSimulatorInterval - нижняя граница интервала генерации,
// чтобы симулятор не заливал буфер
const minSimulatorInterval = 400 * time.Millisecond

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		BrokerURL:          getEnv("BROKER_URL", "nats://localhost:4222"),
		BrokerUser:         os.Getenv("BROKER_USER"),
		BrokerPass:         os.Getenv("BROKER_PASSWORD"),
		BrokerTopicPattern: getEnv("BROKER_TOPIC_PATTERN", "crisis.events.>"),
		CommandsEnabled:    getEnvAsBool("COMMANDS_ENABLED", true),
		SimulatorEnabled:   getEnvAsBool("SIMULATOR_ENABLED", false),
		SimulatorInterval:  getEnvAsDuration("SIMULATOR_INTERVAL", 1200*time.Millisecond),
		MaxEvents:          getEnvAsInt("MAX_EVENTS", 500),
		RecentWindow:       getEnvAsDuration("RECENT_WINDOW", 2400*time.Millisecond),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		WebhookURL:         os.Getenv("WEBHOOK_URL"),
		WebhookSecret:      os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:  getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:   getEnvAsDuration("WEBHOOK_BASE_DELAY", 500*time.Millisecond),
	}

	if cfg.SimulatorInterval < minSimulatorInterval {
		cfg.SimulatorInterval = minSimulatorInterval
	}

	if cfg.MaxEvents < 1 {
		return nil, fmt.Errorf("MAX_EVENTS must be positive, got %d", cfg.MaxEvents)
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
