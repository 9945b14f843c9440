package config

import (
	"flag"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDSN   string `env:"DATABASE_URI"`
	SessionSecret string `env:"SESSION_SECRET"`

	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	ServerURL string `env:"-"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres DSN или путь к SQLite)")
	flag.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "секрет для подписи cookie сессии")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "адрес сервера в формате host:port")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS")

	flag.Parse()

	// Defaults
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "dev-secret-key"
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	return cfg
}
