package config

import (
	"flag"
	"os"
	"testing"
	"time"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
	// аргументы go test не должны попадать в разбор флагов
	args := os.Args
	t.Cleanup(func() { os.Args = args })
	os.Args = args[:1]
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URI", "")
	t.Setenv("ITEMS_COLLECTION", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SERVER_URL", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.Port != "8080" {
		t.Fatalf("Port default expected '8080', got %q", cfg.Port)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("Addr expected ':8080', got %q", cfg.Addr())
	}
	if cfg.DatabaseDSN != "mongodb://localhost:27017/itemkeeper" {
		t.Fatalf("DatabaseDSN default mismatch: %q", cfg.DatabaseDSN)
	}
	if cfg.Collection != "items" {
		t.Fatalf("Collection default expected 'items', got %q", cfg.Collection)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout default expected 10s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel default expected 'info', got %q", cfg.LogLevel)
	}
	if cfg.ServerURL != "http://localhost:8080" {
		t.Fatalf("ServerURL default expected 'http://localhost:8080', got %q", cfg.ServerURL)
	}
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("DATABASE_URI", "postgres://u:p@db:5432/items")
	t.Setenv("ITEMS_COLLECTION", "goods")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_URL", "example.com:3000/")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.Port != "3000" {
		t.Fatalf("Port expected '3000', got %q", cfg.Port)
	}
	if cfg.DatabaseDSN != "postgres://u:p@db:5432/items" {
		t.Fatalf("DatabaseDSN mismatch: %q", cfg.DatabaseDSN)
	}
	if cfg.Collection != "goods" {
		t.Fatalf("Collection expected 'goods', got %q", cfg.Collection)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("ShutdownTimeout expected 3s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel expected 'debug', got %q", cfg.LogLevel)
	}
	// схема дописывается, хвостовой слэш убирается
	if cfg.ServerURL != "http://example.com:3000" {
		t.Fatalf("ServerURL expected 'http://example.com:3000', got %q", cfg.ServerURL)
	}
}

func TestNewConfig_InvalidPortFallback(t *testing.T) {
	// Невалидный PORT должен откатиться на 8080
	t.Setenv("PORT", "http://bad")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.Port != "8080" {
		t.Fatalf("invalid PORT must fallback to '8080', got %q", cfg.Port)
	}
}

func TestNewConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("DATABASE_URI", "items.db")

	resetFlagSet(t)
	os.Args = []string{os.Args[0], "-port", "9090", "-d", "other.db"}
	cfg := NewConfig()

	if cfg.Port != "9090" {
		t.Fatalf("flag must override env PORT, got %q", cfg.Port)
	}
	if cfg.DatabaseDSN != "other.db" {
		t.Fatalf("flag must override env DATABASE_URI, got %q", cfg.DatabaseDSN)
	}
}
