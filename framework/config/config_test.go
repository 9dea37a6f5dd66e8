package config_test

import (
	"os"
	"testing"

	"github.com/kgw94/go-liteflare/framework/config"
)

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	// No env set → verify all defaults
	cfg := config.Load("testdata/empty.env")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"App.Name", cfg.App.Name, "LiteFlare"},
		{"App.Env", cfg.App.Env, "local"},
		{"App.Port", cfg.App.Port, "8080"},
		{"DB.Driver", cfg.DB.Driver, "sqlite"},
		{"DB.Host", cfg.DB.Host, "127.0.0.1"},
		{"DB.Port", cfg.DB.Port, "5432"},
		{"DB.Username", cfg.DB.Username, "root"},
		{"View.Dir", cfg.View.Dir, "./views"},
		{"View.Ext", cfg.View.Ext, ".html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("APP_NAME", "MyApp")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DB_DATABASE", "mydb")

	cfg := config.Load()

	if cfg.App.Name != "MyApp" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "MyApp")
	}
	if cfg.App.Env != "production" {
		t.Errorf("App.Env: got %q want %q", cfg.App.Env, "production")
	}
	if cfg.App.Port != "9000" {
		t.Errorf("App.Port: got %q want %q", cfg.App.Port, "9000")
	}
	if cfg.DB.Database != "mydb" {
		t.Errorf("DB.Database: got %q want %q", cfg.DB.Database, "mydb")
	}
}

func TestLoad_AppDebug(t *testing.T) {
	t.Setenv("APP_DEBUG", "false")
	if cfg := config.Load(); cfg.App.Debug {
		t.Error("expected App.Debug to be false")
	}

	t.Setenv("APP_DEBUG", "true")
	if cfg := config.Load(); !cfg.App.Debug {
		t.Error("expected App.Debug to be true")
	}
}

// ── Get / GetInt / GetBool ───────────────────────────────────────────────────

func TestGet_ReturnsValue(t *testing.T) {
	t.Setenv("CUSTOM_KEY", "hello")
	if got := config.Get("CUSTOM_KEY", "default"); got != "hello" {
		t.Errorf("got %q want %q", got, "hello")
	}
}

func TestGet_ReturnsFallback(t *testing.T) {
	os.Unsetenv("MISSING_KEY")
	if got := config.Get("MISSING_KEY", "fallback"); got != "fallback" {
		t.Errorf("got %q want %q", got, "fallback")
	}
}

func TestGetInt_ReturnsInt(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	if got := config.GetInt("SOME_INT", 0); got != 42 {
		t.Errorf("got %d want %d", got, 42)
	}
}

func TestGetInt_ReturnsFallbackOnInvalid(t *testing.T) {
	t.Setenv("SOME_INT", "notanint")
	if got := config.GetInt("SOME_INT", 99); got != 99 {
		t.Errorf("got %d want %d", got, 99)
	}
}

func TestGetBool_True(t *testing.T) {
	for _, val := range []string{"true", "1", "True", "TRUE"} {
		t.Setenv("BOOL_KEY", val)
		if !config.GetBool("BOOL_KEY", false) {
			t.Errorf("expected true for %q", val)
		}
	}
}

func TestGetBool_ReturnsFallbackOnInvalid(t *testing.T) {
	t.Setenv("BOOL_KEY", "notabool")
	if !config.GetBool("BOOL_KEY", true) {
		t.Error("expected fallback true")
	}
}
