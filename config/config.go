package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the application settings.
type Config struct {
	Env  string
	Host string
	Port string `validate:"required,numeric"`

	CatalogSource string `validate:"oneof=csv postgres"`
	CatalogPath   string `validate:"required_if=CatalogSource csv"`
	CatalogTable  string `validate:"required_if=CatalogSource postgres"`
	PostgresDSN   string `validate:"required_if=CatalogSource postgres"`

	SessionBackend string `validate:"oneof=memory redis"`
	SessionTTL     time.Duration
	RedisAddr      string `validate:"required_if=SessionBackend redis"`

	FallbackPolicy string `validate:"oneof=prefix random"`
	FallbackSeed   uint64
	TopN           int `validate:"min=1,max=9"`

	LogFilePath     string
	TwilioAuthToken string
	PublicBaseURL   string `validate:"omitempty,url"`
	APIKey          string
	CompletionQueue string
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

var (
	cfg  *Config
	once sync.Once

	validate = validator.New()
)

// LoadConfig loads the configuration once per process.
func LoadConfig() *Config {
	once.Do(func() {
		envPaths := []string{".env", "../.env", "../../.env"}
		for _, path := range envPaths {
			if err := godotenv.Load(path); err == nil {
				break
			}
		}
		cfg = FromEnv()
	})
	return cfg
}

// FromEnv builds a Config from the environment without caching it.
func FromEnv() *Config {
	seed, err := strconv.ParseUint(getEnv("FALLBACK_SEED", ""), 10, 64)
	if err != nil {
		seed = uint64(time.Now().UnixNano())
	}

	return &Config{
		Env:  getEnv("APP_ENV", "development"),
		Host: getEnv("HOST", "0.0.0.0"),
		Port: getEnv("PORT", "5000"),

		CatalogSource: getEnv("CATALOG_SOURCE", "csv"),
		CatalogPath:   getEnv("CATALOG_PATH", "data/wep_sample_schemes.csv"),
		CatalogTable:  getEnv("CATALOG_TABLE", "schemes"),
		PostgresDSN:   getEnv("POSTGRES_DSN", ""),

		SessionBackend: getEnv("SESSION_BACKEND", "memory"),
		SessionTTL:     getEnvAsDuration("SESSION_TTL", 0),
		RedisAddr:      getRedisAddr(),

		FallbackPolicy: getEnv("FALLBACK_POLICY", "prefix"),
		FallbackSeed:   seed,
		TopN:           getEnvAsInt("TOP_N", 3),

		LogFilePath:     getEnv("LOG_FILE_PATH", ""),
		TwilioAuthToken: getEnv("TWILIO_AUTH_TOKEN", ""),
		PublicBaseURL:   getEnv("PUBLIC_BASE_URL", ""),
		APIKey:          getEnv("API_KEY", ""),
		CompletionQueue: getEnv("COMPLETION_QUEUE", "queue:completions"),
	}
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.TwilioAuthToken != "" && c.PublicBaseURL == "" {
		return fmt.Errorf("%w: PUBLIC_BASE_URL is required to verify Twilio signatures", ErrInvalid)
	}
	return nil
}

func getEnv(key string, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("⚠️ %s=%q is not a duration, using %s", key, raw, defaultVal)
		return defaultVal
	}
	return d
}

// getRedisAddr reads REDIS_URL, falling back to REDIS_ADDR.
func getRedisAddr() string {
	if redisURL := getEnv("REDIS_URL", ""); redisURL != "" {
		return redisURL
	}
	return getEnv("REDIS_ADDR", "")
}
