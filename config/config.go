package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is read once at startup and never mutated afterwards.
type Config struct {
	Port        string
	Environment string
	Version     string

	DatabaseURL string
	RedisURL    string

	VanthexAPIURL  string
	VanthexAPIKey  string
	VanthexTimeout time.Duration

	RateLimitWindow time.Duration
	RateLimitMax    int

	JWTSecret   string
	CORSOrigins []string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	CacheTTL time.Duration

	OTELEnabled     bool
	OTELEndpoint    string
	OTELInsecure    bool
	OTELSampleRatio float64
}

func Load() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", "5000"),
		Environment:     getEnv("APP_ENV", "development"),
		Version:         getEnv("APP_VERSION", "1.0.0"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		VanthexAPIURL:   strings.TrimRight(getEnv("VANTHEX_API_URL", "http://localhost:5001/api"), "/"),
		VanthexAPIKey:   getEnv("VANTHEX_API_KEY", "development_key"),
		VanthexTimeout:  getDuration("VANTHEX_TIMEOUT", 30*time.Second),
		RateLimitWindow: time.Duration(getInt("RATE_LIMIT_WINDOW_MS", 15*60*1000)) * time.Millisecond,
		RateLimitMax:    getInt("RATE_LIMIT_MAX", 100),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		CacheTTL: getDuration("CACHE_TTL", 5*time.Minute),

		OTELEnabled:     getBool("OTEL_ENABLED"),
		OTELEndpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTELInsecure:    getBool("OTEL_EXPORTER_OTLP_INSECURE"),
		OTELSampleRatio: getRatio("OTEL_SAMPLER_RATIO", 0.1),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_NAME", "optivana"),
		)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return cfg, fmt.Errorf("JWT_SECRET environment variable not set")
		}
		cfg.JWTSecret = "dev-secret-key-change-in-production"
	}
	if cfg.RateLimitMax <= 0 {
		return cfg, fmt.Errorf("RATE_LIMIT_MAX must be positive, got %d", cfg.RateLimitMax)
	}
	if cfg.RateLimitWindow <= 0 {
		return cfg, fmt.Errorf("RATE_LIMIT_WINDOW_MS must be positive")
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c Config) CloudinaryEnabled() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return i
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// RequestBudget bounds a handler that makes one engine call plus database work.
func (c Config) RequestBudget() time.Duration {
	return c.VanthexTimeout + 10*time.Second
}

func getBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// getRatio clamps to [0,1].
func getRatio(key string, defaultValue float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultValue
	}
	return math.Min(math.Max(f, 0), 1)
}
