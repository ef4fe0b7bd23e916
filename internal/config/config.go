// Package config загрузка конфигурации сервиса из TOML файла
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// SlotModeLocal и SlotModeRemote режимы работы со слотами:
// local - слоты хранятся в БД этого сервиса (самодостаточный деплой),
// remote - слоты принадлежат удалённому сервису и доступны через HTTP шлюз
const (
	SlotModeLocal  = "local"
	SlotModeRemote = "remote"
)

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Slots       SlotsConfig       `toml:"slots"`
	SlotService SlotServiceConfig `toml:"slot_service"`
	Redis       RedisConfig       `toml:"redis"`
}

// ServerConfig настройки HTTP сервера
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

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SlotsConfig стратегия доступа к слотам
type SlotsConfig struct {
	Mode           string `toml:"mode"`             // local | remote
	RemotePageSize int    `toml:"remote_page_size"` // размер страницы при чтении слотов из удалённого сервиса
}

// SlotServiceConfig настройки клиента удалённого сервиса слотов
// Используется только при slots.mode = "remote"
type SlotServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// RedisConfig настройки Redis для блокировки бронирования по профессионалу
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	LockTTLSec int    `toml:"lock_ttl"` // секунды
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}

	switch c.Slots.Mode {
	case SlotModeLocal:
	case SlotModeRemote:
		if c.SlotService.URL == "" {
			return fmt.Errorf("config: slot_service.url is required when slots.mode = %q", SlotModeRemote)
		}
	default:
		return fmt.Errorf("config: slots.mode must be %q or %q, got %q",
			SlotModeLocal, SlotModeRemote, c.Slots.Mode)
	}

	if c.Slots.RemotePageSize <= 0 {
		c.Slots.RemotePageSize = 1000
	}
	if c.SlotService.Timeout <= 0 {
		c.SlotService.Timeout = 5
	}
	if c.Redis.LockTTLSec <= 0 {
		c.Redis.LockTTLSec = 10
	}

	return nil
}
