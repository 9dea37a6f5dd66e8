package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the central typed configuration struct, registered in the
// container as the "config" singleton at bootstrap.
type Config struct {
	App  AppConfig
	DB   DBConfig
	View ViewConfig
}

type AppConfig struct {
	Name  string
	Env   string // local | production | testing
	Debug bool
	Port  string
	Key   string
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	Database string
	Username string
	Password string
}

type ViewConfig struct {
	Dir string
	Ext string
}

// Load reads .env (if present) and populates a Config from environment
// variables. Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	return &Config{
		App: AppConfig{
			Name:  env("APP_NAME", "LiteFlare"),
			Env:   env("APP_ENV", "local"),
			Debug: envBool("APP_DEBUG", true),
			Port:  env("APP_PORT", "8080"),
			Key:   env("APP_KEY", ""),
		},
		DB: DBConfig{
			Driver:   env("DB_DRIVER", "sqlite"),
			Host:     env("DB_HOST", "127.0.0.1"),
			Port:     env("DB_PORT", "5432"),
			Database: env("DB_DATABASE", ""),
			Username: env("DB_USERNAME", "root"),
			Password: env("DB_PASSWORD", ""),
		},
		View: ViewConfig{
			Dir: env("VIEW_DIR", "./views"),
			Ext: env("VIEW_EXT", ".html"),
		},
	}
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
