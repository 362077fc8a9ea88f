package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Store     StoreConfig     `toml:"store"`
	Dashboard DashboardConfig `toml:"dashboard"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StoreConfig внешнее REST хранилище записей
type StoreConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// DashboardConfig настройки дашборда статистики
type DashboardConfig struct {
	Charts      []string `toml:"charts"`
	LoadOnStart bool     `toml:"load_on_start"`
}

// Переменные окружения, переопределяющие файл конфигурации
const (
	EnvHTTPPort       = "STUDIO_HTTP_PORT"
	EnvStoreURL       = "STUDIO_STORE_URL"
	EnvStoreTimeout   = "STUDIO_STORE_TIMEOUT"
	EnvLogLevel       = "STUDIO_LOG_LEVEL"
	EnvLogFile        = "STUDIO_LOG_FILE"
	EnvMetricsEnabled = "STUDIO_METRICS_ENABLED"
)

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "studio-service",
		},
		Store: StoreConfig{
			URL:     "http://localhost:3000",
			Timeout: 5,
		},
		Dashboard: DashboardConfig{
			Charts:      []string{"tipos", "valores", "mensal", "status"},
			LoadOnStart: true,
		},
	}
}

// Load читает конфигурацию из TOML файла, затем применяет переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv переопределяет значения из окружения
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvHTTPPort); ok {
		port, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvHTTPPort, v)
		}
		c.Server.HTTPPort = port
	}
	if v, ok := lookup(EnvStoreURL); ok {
		c.Store.URL = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvStoreTimeout); ok {
		timeout, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvStoreTimeout, v)
		}
		c.Store.Timeout = timeout
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Logs.Level = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.Logs.File = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvMetricsEnabled); ok {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvMetricsEnabled, v)
		}
		c.Metrics.Enabled = enabled
	}
	return nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	u, err := url.Parse(c.Store.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: store.url must be an absolute URL, got %q", ErrInvalidConfig, c.Store.URL)
	}

	if c.Store.Timeout <= 0 {
		return fmt.Errorf("%w: store.timeout must be positive, got %d", ErrInvalidConfig, c.Store.Timeout)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /, got %q", ErrInvalidConfig, c.Metrics.Path)
	}

	return nil
}
