package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	HTTP      HTTPConfig
	RateLimit RateLimitConfig
	Log       LogConfig
	IDScheme  string
}

type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type HTTPConfig struct {
	AllowedOrigins []string
	EnableHSTS     bool
	MaxBodyBytes   int64
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type LogConfig struct {
	Level  string
	Format string
}

// LoadEnvFiles reads .env and .env.local. Variables already present in the
// environment are never overridden.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load creates a Config from environment variables with defaults.
func Load() *Config {
	LoadEnvFiles()

	return &Config{
		Server: ServerConfig{
			Addr:            getEnv("APP_ADDR", ":9000"),
			ReadTimeout:     getEnvSeconds("READ_TIMEOUT", 5),
			WriteTimeout:    getEnvSeconds("WRITE_TIMEOUT", 10),
			IdleTimeout:     getEnvSeconds("IDLE_TIMEOUT", 60),
			ShutdownTimeout: getEnvSeconds("SHUTDOWN_TIMEOUT", 10),
		},
		HTTP: HTTPConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
			EnableHSTS:     getEnv("ENABLE_HSTS", "false") == "true",
			MaxBodyBytes:   int64(getEnvInt("MAX_BODY_BYTES", 1<<20)),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvFloat("RATE_LIMIT_RPS", 20),
			Burst: getEnvInt("RATE_LIMIT_BURST", 40),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		IDScheme: getEnv("BOOK_ID_SCHEME", "nanoid"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvSeconds(key string, defaultVal int) time.Duration {
	return time.Duration(getEnvInt(key, defaultVal)) * time.Second
}

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
