package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	Chat      ChatConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port            string
	Env             string
	StaticDir       string
	LogLevel        string
	ShutdownTimeout time.Duration
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// ChatConfig holds the business limits applied by the conversation flow.
type ChatConfig struct {
	SlotCapacity int
	ListLimit    int
}

type RateLimitConfig struct {
	Requests   int
	Window     time.Duration
	FailOpen   bool
	// TrustProxy keys clients on X-Forwarded-For / X-Real-IP. Enable only
	// behind a proxy that overwrites those headers.
	TrustProxy bool
}

const (
	defaultShutdownTimeout = 10 * time.Second
	defaultRateLimitWindow = time.Minute
	defaultSlotCapacity    = 5
	defaultListLimit       = 10
)

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "5000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_STATIC_DIR", "public")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "patient_chatbot")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("RATE_LIMIT_REQUESTS", 60)
	v.SetDefault("RATE_LIMIT_FAIL_OPEN", true)
	v.SetDefault("RATE_LIMIT_TRUST_PROXY", false)

	// The .env file is optional; plain environment variables are enough.
	if _, err := os.Stat(".env"); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	shutdownTimeout, err := time.ParseDuration(v.GetString("SHUTDOWN_TIMEOUT"))
	if err != nil || shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	rateLimitWindow, err := time.ParseDuration(v.GetString("RATE_LIMIT_WINDOW"))
	if err != nil || rateLimitWindow <= 0 {
		rateLimitWindow = defaultRateLimitWindow
	}

	slotCapacity := v.GetInt("CHAT_SLOT_CAPACITY")
	if slotCapacity <= 0 {
		slotCapacity = defaultSlotCapacity
	}

	listLimit := v.GetInt("CHAT_LIST_LIMIT")
	if listLimit <= 0 {
		listLimit = defaultListLimit
	}

	config := &Config{
		App: AppConfig{
			Port:            v.GetString("APP_PORT"),
			Env:             v.GetString("APP_ENV"),
			StaticDir:       v.GetString("APP_STATIC_DIR"),
			LogLevel:        v.GetString("LOG_LEVEL"),
			ShutdownTimeout: shutdownTimeout,
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Chat: ChatConfig{
			SlotCapacity: slotCapacity,
			ListLimit:    listLimit,
		},
		RateLimit: RateLimitConfig{
			Requests:   v.GetInt("RATE_LIMIT_REQUESTS"),
			Window:     rateLimitWindow,
			FailOpen:   v.GetBool("RATE_LIMIT_FAIL_OPEN"),
			TrustProxy: v.GetBool("RATE_LIMIT_TRUST_PROXY"),
		},
	}

	return config, nil
}
