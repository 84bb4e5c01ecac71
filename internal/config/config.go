package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
const EnvPrefix = "SMC_"

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// ErrInvalidConfig некорректная конфигурация
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса.
// Порядок: значения по умолчанию -> config.toml -> переменные окружения SMC_*.
type Config struct {
	Server       ServerConfig       `toml:"server" envPrefix:"SERVER_"`
	Database     DatabaseConfig     `toml:"database" envPrefix:"DATABASE_"`
	Logs         LogsConfig         `toml:"logs" envPrefix:"LOGS_"`
	Metrics      MetricsConfig      `toml:"metrics" envPrefix:"METRICS_"`
	StaffService StaffServiceConfig `toml:"staff_service" envPrefix:"STAFF_SERVICE_"`
	Redis        RedisConfig        `toml:"redis" envPrefix:"REDIS_"`
	Engine       EngineConfig       `toml:"engine" envPrefix:"ENGINE_"`
}

// ServerConfig HTTP сервер; таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout    int `toml:"write_timeout" env:"WRITE_TIMEOUT"`
	IdleTimeout     int `toml:"idle_timeout" env:"IDLE_TIMEOUT"`
	ShutdownTimeout int `toml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig хранилище. driver = "memory" поднимает сервис без PostgreSQL
type DatabaseConfig struct {
	Driver          string `toml:"driver" env:"DRIVER"`
	Host            string `toml:"host" env:"HOST"`
	Port            int    `toml:"port" env:"PORT"`
	User            string `toml:"user" env:"USER"`
	Password        string `toml:"password" env:"PASSWORD"`
	DBName          string `toml:"dbname" env:"DBNAME"`
	SSLMode         string `toml:"sslmode" env:"SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" env:"MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" env:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" env:"CONN_MAX_LIFETIME"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate" env:"AUTO_MIGRATE"`
}

// DSN строка подключения lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file" env:"FILE"` // пусто = только stdout
	Level string `toml:"level" env:"LEVEL"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"ENABLED"`
	Path        string `toml:"path" env:"PATH"`
	ServiceName string `toml:"service_name" env:"SERVICE_NAME"`
}

// StaffServiceConfig справочник сотрудников и услуг
type StaffServiceConfig struct {
	URL     string `toml:"url" env:"URL"`
	Timeout int    `toml:"timeout" env:"TIMEOUT"` // секунды
}

// RedisConfig распределённая блокировка расписания сотрудника.
// Выключен - блокировка в памяти процесса (один экземпляр сервиса).
type RedisConfig struct {
	Enabled  bool   `toml:"enabled" env:"ENABLED"`
	Addr     string `toml:"addr" env:"ADDR"`
	Password string `toml:"password" env:"PASSWORD"`
	DB       int    `toml:"db" env:"DB"`
	LockTTL  int    `toml:"lock_ttl" env:"LOCK_TTL"` // секунды
}

// EngineConfig параметры расчёта доступности
type EngineConfig struct {
	DefaultHorizonDays int `toml:"default_horizon_days" env:"DEFAULT_HORIZON_DAYS"`
}

// Default значения по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "smc_availability",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc-availabilityservice",
		},
		StaffService: StaffServiceConfig{
			URL:     "http://localhost:8081",
			Timeout: 5,
		},
		Redis: RedisConfig{
			Addr:    "localhost:6379",
			LockTTL: 10,
		},
		Engine: EngineConfig{
			DefaultHorizonDays: 7,
		},
	}
}

// Load читает конфигурацию из path и переменных окружения.
// Отсутствующий файл не ошибка: берутся значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidConfig, path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			// Первой ошибки достаточно, чтобы понять, какая переменная сломана
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, aggErr.Errors[0])
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if c.Server.ShutdownTimeout <= 0 {
		problems = append(problems, "server.shutdown_timeout must be positive")
	}

	switch c.Database.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			problems = append(problems, "database.host and database.dbname are required for postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("database.driver must be %q or %q", DriverPostgres, DriverMemory))
	}

	switch strings.ToLower(c.Logs.Level) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, "logs.level must be one of debug, info, warn, error")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}

	if c.StaffService.URL == "" || c.StaffService.Timeout <= 0 {
		problems = append(problems, "staff_service.url and a positive staff_service.timeout are required")
	}

	if c.Redis.Enabled && (c.Redis.Addr == "" || c.Redis.LockTTL <= 0) {
		problems = append(problems, "redis.addr and a positive redis.lock_ttl are required when redis is enabled")
	}

	if c.Engine.DefaultHorizonDays < 1 {
		problems = append(problems, "engine.default_horizon_days must be at least 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
