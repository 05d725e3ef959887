package config

import (
	"flag"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	defaultPort            = "8080"
	defaultDatabaseDSN     = "mongodb://localhost:27017/itemkeeper"
	defaultCollection      = "items"
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
	defaultServerURL       = "http://localhost:8080"
)

type Config struct {
	// Server-side settings
	Port            string        `env:"PORT"`
	DatabaseDSN     string        `env:"DATABASE_URI"`
	Collection      string        `env:"ITEMS_COLLECTION"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
	LogLevel        string        `env:"LOG_LEVEL"`

	// Client-side settings
	ServerURL string `env:"SERVER_URL"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

// Addr — адрес для http.Server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги перекрывают значения из окружения
	// Server flags
	flag.StringVar(&cfg.Port, "port", cfg.Port, "порт HTTP-сервера")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к хранилищу (mongodb://, postgres:// или путь к SQLite)")
	flag.StringVar(&cfg.Collection, "collection", cfg.Collection, "коллекция MongoDB для items")
	flag.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "время на graceful shutdown")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "уровень логирования: debug|info|warn|error")
	// Client flags
	flag.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "URL сервера ItemKeeper (host:port или полный URL)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	// порт: только цифры, иначе откатываемся на значение по умолчанию
	portRe := regexp.MustCompile(`^\d{1,5}$`)
	if !portRe.MatchString(cfg.Port) {
		cfg.Port = defaultPort
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = defaultDatabaseDSN
	}
	if cfg.Collection == "" {
		cfg.Collection = defaultCollection
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")
	switch {
	case cfg.ServerURL == "":
		cfg.ServerURL = defaultServerURL
	case !strings.HasPrefix(cfg.ServerURL, "http://") && !strings.HasPrefix(cfg.ServerURL, "https://"):
		cfg.ServerURL = "http://" + cfg.ServerURL
	}

	return cfg
}
