package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	Redis          RedisConfig          `toml:"redis"`
	GoogleCalendar GoogleCalendarConfig `toml:"google_calendar"`
	Scheduling     SchedulingConfig     `toml:"scheduling"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
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

// RedisConfig настройки кэша занятости внешнего календаря
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// GoogleCalendarConfig настройки интеграции с Google Calendar
type GoogleCalendarConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	// TimeoutSeconds ограничение на получение занятости за один запрос
	TimeoutSeconds int `toml:"timeout_seconds"`
	// FailurePolicy "open" или "closed"
	FailurePolicy   string  `toml:"failure_policy"`
	MarkerKey       string  `toml:"marker_key"`
	CacheTTLSeconds int     `toml:"cache_ttl_seconds"`
	RateLimit       float64 `toml:"rate_limit"`
	RateBurst       int     `toml:"rate_burst"`
	// PushBookings создавать событие в календаре бизнеса после бронирования
	PushBookings bool `toml:"push_bookings"`
}

// Timeout таймаут в виде time.Duration
func (g GoogleCalendarConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// CacheTTL TTL кэша в виде time.Duration
func (g GoogleCalendarConfig) CacheTTL() time.Duration {
	return time.Duration(g.CacheTTLSeconds) * time.Second
}

// SchedulingConfig настройки расчета слотов
type SchedulingConfig struct {
	// DefaultTimezone для бизнесов без указанного часового пояса
	DefaultTimezone string `toml:"default_timezone"`
}

// Location часовой пояс по умолчанию
func (s SchedulingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.DefaultTimezone)
}

// Load загружает конфигурацию из TOML файла.
// Переменные окружения вида ${VAR} подставляются в файл до разбора,
// .env (если есть) загружается в окружение заранее.
// Путь можно переопределить переменной CONFIG_PATH.
func Load(path string) (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	if env := os.Getenv("CONFIG_PATH"); env != "" {
		path = env
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return Parse(string(data))
}

// Parse разбирает содержимое TOML, применяет значения по умолчанию и валидирует
func Parse(content string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(os.ExpandEnv(content), &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "biztree-scheduler"
	}

	if c.Redis.Prefix == "" {
		c.Redis.Prefix = "biztree:"
	}

	if c.GoogleCalendar.TimeoutSeconds == 0 {
		c.GoogleCalendar.TimeoutSeconds = 5
	}
	if c.GoogleCalendar.FailurePolicy == "" {
		c.GoogleCalendar.FailurePolicy = "open"
	}
	if c.GoogleCalendar.MarkerKey == "" {
		c.GoogleCalendar.MarkerKey = "bookingId"
	}
	if c.GoogleCalendar.RateBurst == 0 {
		c.GoogleCalendar.RateBurst = 5
	}

	if c.Scheduling.DefaultTimezone == "" {
		c.Scheduling.DefaultTimezone = "UTC"
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch strings.ToLower(c.GoogleCalendar.FailurePolicy) {
	case "open", "closed":
	default:
		return fmt.Errorf("%w: google_calendar.failure_policy must be open or closed, got %q",
			ErrInvalidConfig, c.GoogleCalendar.FailurePolicy)
	}

	if c.GoogleCalendar.TimeoutSeconds < 0 || c.GoogleCalendar.CacheTTLSeconds < 0 {
		return fmt.Errorf("%w: google_calendar timeouts must not be negative", ErrInvalidConfig)
	}

	if _, err := c.Scheduling.Location(); err != nil {
		return fmt.Errorf("%w: scheduling.default_timezone: %v", ErrInvalidConfig, err)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}

	return nil
}
