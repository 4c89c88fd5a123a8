package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Gemini   GeminiConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
	// CookieSecure controls the Secure flag on the auth cookie; off in
	// development so the cookie works over plain HTTP.
	CookieSecure bool
}

// RedisConfig enables the read-path cache. An empty Addr disables
// caching entirely.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Load reads configuration from the environment once at startup. A .env
// file is honored when present so local development needs no exported
// variables.
func Load() *Config {
	_ = godotenv.Load()
	env := getenv("APP_ENV", "development")
	return &Config{
		Server: ServerConfig{
			Port:         getenv("APP_PORT", "8080"),
			Env:          env,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             getenv("DB_DSN", "fintrack:fintrack@tcp(localhost:3306)/fintrack?charset=utf8mb4&parseTime=True&loc=UTC"),
			MaxIdleConns:    getenvInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getenvInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: time.Hour,
		},
		JWT: JWTConfig{
			Secret:       getenv("JWT_SECRET", ""),
			Expiry:       time.Duration(getenvInt("JWT_EXPIRE_HOURS", 1)) * time.Hour,
			Issuer:       getenv("JWT_ISSUER", "fintrack"),
			CookieSecure: env == "production",
		},
		Redis: RedisConfig{
			Addr:     getenv("REDIS_ADDR", ""),
			Password: getenv("REDIS_PASS", ""),
			DB:       getenvInt("REDIS_DB", 0),
		},
		Gemini: GeminiConfig{
			APIKey:  getenv("GEMINI_API_KEY", ""),
			Model:   getenv("GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout: 30 * time.Second,
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
